package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reqparse/assets"
	"reqparse/parser"
	"reqparse/utils"
)

type app struct {
	v       *viper.Viper
	cfg     Config
	cfgFile string
	headers utils.Headers
}

func newApp() *app {
	return &app{v: viper.New()}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reqparse [flags] [file]",
		Short:         "Parse a raw HTTP/1.1 request into method, path, headers, query and body",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			if len(args) == 1 {
				a.cfg.RequestFile = args[0]
			}
			return a.run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./reqparse.yaml)")
	flags.StringP("request", "r", "", "File with raw HTTP request ('-' reads stdin)")
	flags.VarP(&a.headers, "header", "H", "Extra header \"Name: Value\" applied after parsing. Multiple -H flags are accepted.")
	flags.Bool("json", false, "JSON output")
	flags.Bool("normalize", false, "Print the request as fasthttp serializes it")
	flags.BoolP("color", "c", false, "Colorize output")
	flags.BoolP("verbose", "v", false, "Verbose output")

	for _, name := range []string{"request", "json", "normalize", "color", "verbose"} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Errorf("could not bind flag %q in viper: %v", name, err))
		}
	}
	return cmd
}

func (a *app) run(stdin io.Reader, stdout, stderr io.Writer) error {
	utils.InitColors(a.cfg.Colorize)
	log := utils.NewLogger(stderr, a.cfg.Verbose, a.cfg.Colorize)

	if a.cfg.RequestFile == "" {
		return errors.New("-r flag or a request file argument is required")
	}

	raw, err := readRequest(a.cfg.RequestFile, stdin)
	if err != nil {
		return err
	}
	log.Debug().Str("source", a.cfg.RequestFile).Int("bytes", len(raw)).Msg("read request")

	req, err := parser.ParseRequest(string(raw))
	if err != nil {
		return errors.Wrap(err, "parsing request")
	}

	extra := utils.Headers(a.cfg.Headers).Apply(nil)
	for name, value := range extra {
		if _, ok := req.Headers[name]; ok {
			assets.PrintWarning(stderr, fmt.Sprintf("header %s overridden by -H", name), a.cfg.Colorize)
		}
		req.Headers[name] = value
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("headers", len(req.Headers)).
		Bool("query", req.Query != nil).
		Bool("body", req.Body != nil).
		Msg("parsed request")

	printer := utils.NewPrinter(a.cfg.JSONOutput, a.cfg.Colorize)
	printer.SetOutput(stdout)

	if a.cfg.Normalize {
		return printer.PrintNormalized(req)
	}
	return printer.Print(req)
}

func readRequest(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		raw, err := io.ReadAll(stdin)
		return raw, errors.Wrap(err, "reading stdin")
	}

	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading request file %s", name)
	}
	return raw, nil
}
