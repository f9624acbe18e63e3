package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"reqparse/parser"
)

type Printer struct {
	json     bool
	colorize bool

	out io.Writer
}

func NewPrinter(jsonOutput, colorize bool) *Printer {
	return &Printer{
		json:     jsonOutput,
		colorize: colorize,
		out:      os.Stdout,
	}
}

// SetOutput redirects everything the printer writes.
func (p *Printer) SetOutput(w io.Writer) {
	p.out = w
}

func (p *Printer) Print(req *parser.Request) error {
	if p.json {
		return p.printJSON(req)
	}

	requestLine := strings.TrimSpace(fmt.Sprintf("%s %s %s", req.Method, req.RequestURI(), req.Proto))
	p.label(Cyan, "request")
	if p.colorize {
		getMethodColor(req.Method).Fprintf(p.out, " :: %s\n", requestLine)
	} else {
		fmt.Fprintf(p.out, " :: %s\n", requestLine)
	}

	if site := req.Site(); site != "" {
		p.label(Cyan, "site")
		fmt.Fprintf(p.out, " :: %s\n", site)
	}

	if req.Query != nil {
		p.section(Magenta, "query", req.Query, "=")
	}
	if len(req.Headers) > 0 {
		p.section(Yellow, "header", req.Headers, ": ")
	}
	if req.Body != nil {
		p.section(Green, "body", req.Body, ": ")
	}
	return nil
}

// PrintNormalized writes the request the way fasthttp serializes it.
func (p *Printer) PrintNormalized(req *parser.Request) error {
	dst := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(dst)

	req.CopyTo(dst)

	w := bufio.NewWriter(p.out)
	if err := dst.Write(w); err != nil {
		return errors.Wrap(err, "serializing request")
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(p.out)
	return nil
}

func (p *Printer) label(c *color.Color, name string) {
	if p.colorize {
		c.Fprintf(p.out, "[%s]", name)
	} else {
		fmt.Fprintf(p.out, "[%s]", name)
	}
}

func (p *Printer) section(c *color.Color, name string, fields map[string]string, sep string) {
	p.label(c, name)
	fmt.Fprintln(p.out)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(p.out, "  %s%s%s\n", key, sep, fields[key])
	}
}

func getMethodColor(method string) *color.Color {
	switch strings.ToUpper(method) {
	case "GET", "HEAD", "OPTIONS":
		return Green
	case "POST":
		return Yellow
	case "PUT", "PATCH":
		return Blue
	case "DELETE":
		return Red
	default:
		return White
	}
}

func (p *Printer) printJSON(req *parser.Request) error {
	jsonResult := map[string]interface{}{
		"method":  req.Method,
		"path":    req.Path,
		"proto":   req.Proto,
		"headers": req.Headers,
		"body":    req.Body,
		"query":   req.Query,
	}

	if site := req.Site(); site != "" {
		jsonResult["site"] = site
	}

	data, err := json.Marshal(jsonResult)
	if err != nil {
		return errors.Wrap(err, "encoding request")
	}
	fmt.Fprintln(p.out, string(data))
	return nil
}
