package utils

import (
	"fmt"
	"strings"

	"reqparse/parser"
)

// Headers collects repeated -H "Name: Value" flags.
type Headers []string

func (h *Headers) String() string {
	return fmt.Sprintf("%v", *h)
}

func (h *Headers) Set(value string) error {
	name, _, found := strings.Cut(value, ":")
	if !found || strings.TrimSpace(name) == "" {
		return fmt.Errorf("invalid header %q, expected \"Name: Value\"", value)
	}
	*h = append(*h, value)
	return nil
}

func (h *Headers) Type() string {
	return "header"
}

// Apply folds every header line into dst, later lines overriding earlier
// ones and any header of the same name already in dst.
func (h Headers) Apply(dst map[string]string) map[string]string {
	for _, line := range h {
		dst = parser.ParseHeaderLine(line, dst)
	}
	return dst
}
