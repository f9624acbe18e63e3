package assets

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// Project base colors
	ErrorColor   = color.New(color.FgRed)
	WarningColor = color.New(color.FgYellow)
)

// PrintError writes "[error] :: message", the tag in red when colorize is set.
func PrintError(w io.Writer, message string, colorize bool) {
	printTagged(w, ErrorColor, "error", message, colorize)
}

// PrintWarning writes "[warning] :: message" with the tag in yellow.
func PrintWarning(w io.Writer, message string, colorize bool) {
	printTagged(w, WarningColor, "warning", message, colorize)
}

func printTagged(w io.Writer, c *color.Color, tag, message string, colorize bool) {
	if colorize {
		c.Fprintf(w, "[%s]", tag)
		fmt.Fprintf(w, " :: %s\n", message)
	} else {
		fmt.Fprintf(w, "[%s] :: %s\n", tag, message)
	}
}
