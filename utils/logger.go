package utils

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the diagnostic logger used on stderr. Debug events are
// only written in verbose mode.
func NewLogger(w io.Writer, verbose, colorize bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !colorize,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
