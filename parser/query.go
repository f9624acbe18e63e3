package parser

import "strings"

// SplitTarget separates path and raw query at the first '?'.
// hasQuery reports whether a '?' was present at all.
func SplitTarget(target string) (path, rawQuery string, hasQuery bool) {
	return strings.Cut(target, "?")
}

// ExtractQuery parses the query string of path into a flat map.
// It returns nil when path has no '?', and an empty map for "path?".
// Pairs split on their first '=', a pair without one maps to "", and the
// last occurrence of a repeated key wins. Nothing is percent-decoded.
func ExtractQuery(path string) map[string]string {
	_, rawQuery, ok := SplitTarget(path)
	if !ok {
		return nil
	}

	query := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		query[key] = value
	}
	return query
}
