package parser

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/valyala/fasthttp"
)

// CopyTo resets dst and fills it from r: method, request URI, headers and
// body. Content-Length is left for fasthttp to compute from the re-encoded
// body.
func (r *Request) CopyTo(dst *fasthttp.Request) {
	dst.Reset()
	dst.Header.SetMethod(r.Method)
	dst.SetRequestURI(r.RequestURI())

	for key, value := range r.Headers {
		if strings.EqualFold(key, fasthttp.HeaderContentLength) {
			continue
		}
		dst.Header.Set(key, value)
	}

	if r.Body != nil {
		dst.SetBody(r.encodeBody())
	}
}

// RequestURI returns the request target. A parsed query is written back as
// it appeared; a Query built by hand is joined in key order, with bare keys
// for empty values.
func (r *Request) RequestURI() string {
	if r.Query == nil {
		return r.Path
	}
	if r.RawQuery != "" {
		return r.Path + "?" + r.RawQuery
	}

	var b strings.Builder
	b.WriteString(r.Path)
	b.WriteByte('?')
	for i, key := range sortedKeys(r.Query) {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		if value := r.Query[key]; value != "" {
			b.WriteByte('=')
			b.WriteString(value)
		}
	}
	return b.String()
}

func (r *Request) encodeBody() []byte {
	if isFormEncoded(r.Header(fasthttp.HeaderContentType)) {
		args := fasthttp.AcquireArgs()
		defer fasthttp.ReleaseArgs(args)
		for _, key := range sortedKeys(r.Body) {
			args.Set(key, r.Body[key])
		}
		return args.AppendBytes(nil)
	}

	// map[string]string always marshals
	body, _ := json.Marshal(r.Body)
	return body
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
