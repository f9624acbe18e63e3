package parser

import (
	"strings"

	"github.com/pkg/errors"
)

const formContentType = "application/x-www-form-urlencoded"

// Request is the structured form of a raw HTTP request.
// Body and Query are nil when the request carries none. RawQuery keeps the
// query string exactly as it appeared after the first '?'.
type Request struct {
	Method   string            `json:"method"`
	Path     string            `json:"path"`
	Proto    string            `json:"proto"`
	RawQuery string            `json:"-"`
	Headers  map[string]string `json:"headers"`
	Body     map[string]string `json:"body"`
	Query    map[string]string `json:"query"`
}

/*
ParseRequest turns a raw HTTP request string into a Request.
It assumes the raw request follows the standard HTTP format:
1. Request-Line (Method Target Version)
2. Headers
3. Blank Line
4. Body (Optional)

Blank lines before the Request-Line are skipped, and both LF and CRLF line
endings are accepted.
*/
func ParseRequest(raw string) (*Request, error) {
	if raw == "" {
		return nil, ErrEmptyInput
	}

	lines := splitLines(raw)

	// The first non-blank line is the Request-Line
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	if start == len(lines) {
		return nil, errors.Wrap(ErrEmptyInput, "no request line")
	}

	req, err := parseStartLine(lines[start])
	if err != nil {
		return nil, err
	}

	// Headers run until the first blank line
	i := start + 1
	for ; i < len(lines) && !isBlank(lines[i]); i++ {
		ParseHeaderLine(lines[i], req.Headers)
	}
	if i >= len(lines) {
		return req, nil
	}

	body := strings.Join(lines[i+1:], "\n")
	if isBlank(body) {
		return req, nil
	}

	if isFormEncoded(req.Header("Content-Type")) {
		req.Body = parseForm(body)
		return req, nil
	}

	// only JSON objects are decoded
	if !strings.HasPrefix(strings.TrimSpace(body), "{") {
		return req, nil
	}

	req.Body, err = ParseBody(body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.Path)
	}
	return req, nil
}

// parseStartLine reads method, target and protocol from the Request-Line.
// The protocol token is optional.
func parseStartLine(line string) (*Request, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return nil, errors.Wrapf(ErrMalformedStartLine, "%q", line)
	}

	target := parts[1]
	path, rawQuery, _ := SplitTarget(target)

	req := &Request{
		Method:   parts[0],
		Path:     path,
		RawQuery: rawQuery,
		Headers:  make(map[string]string),
		Query:    ExtractQuery(target),
	}
	if len(parts) > 2 {
		req.Proto = parts[2]
	}
	return req, nil
}

// Header returns the value of the named header. An exact match wins, then
// the case-insensitive match whose key sorts first.
func (r *Request) Header(name string) string {
	if value, ok := r.Headers[name]; ok {
		return value
	}

	match, found := "", false
	for key := range r.Headers {
		if strings.EqualFold(key, name) && (!found || key < match) {
			match, found = key, true
		}
	}
	if !found {
		return ""
	}
	return r.Headers[match]
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isFormEncoded(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), formContentType)
}
