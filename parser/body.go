package parser

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// ParseBody decodes a flat JSON object into a map of strings.
// String values are unquoted; numbers, booleans, null and nested values keep
// their compact JSON text. A blank body returns nil and no error.
func ParseBody(body string) (map[string]string, error) {
	text := strings.TrimSpace(body)
	if text == "" {
		return nil, nil
	}
	if text[0] != '{' {
		return nil, errors.Wrap(ErrMalformedBody, "body is not a JSON object")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, errors.Wrap(ErrMalformedBody, err.Error())
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		fields[key] = flatValue(value)
	}
	return fields, nil
}

func flatValue(value json.RawMessage) string {
	if len(value) > 0 && value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}
	return buf.String()
}

// parseForm decodes an application/x-www-form-urlencoded body.
// Keys and values are percent-decoded and the last repeated key wins.
func parseForm(body string) map[string]string {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	args.Parse(strings.TrimSpace(body))

	form := make(map[string]string, args.Len())
	args.VisitAll(func(key, value []byte) {
		form[string(key)] = string(value)
	})
	return form
}
