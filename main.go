package main

import (
	"os"

	"reqparse/assets"
)

/*
The main package contains the entry point for the reqparse application.
It reads a raw HTTP/1.1 request from a file or stdin, parses it into method,
path, headers, query and body, and prints the result as text or JSON.
Settings come from flags, an optional reqparse.yaml and REQPARSE_* variables.
*/

func main() {
	a := newApp()
	if err := a.command().Execute(); err != nil {
		assets.PrintError(os.Stderr, err.Error(), a.cfg.Colorize)
		os.Exit(1)
	}
}
