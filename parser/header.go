package parser

import "strings"

// ParseHeaderLine folds one "Name: value" line into headers and returns the
// map. Only the first colon separates name from value, so values such as
// URLs keep theirs. Lines without a colon or without a name leave the map
// unchanged. A later line with the same name replaces the earlier value.
func ParseHeaderLine(line string, headers map[string]string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}

	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return headers
	}

	key := strings.TrimSpace(parts[0])
	if key == "" {
		return headers
	}
	headers[key] = strings.TrimSpace(parts[1])
	return headers
}
