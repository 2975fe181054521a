package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gqlgo/gqlschema/headers"
	"github.com/gqlgo/gqlschema/printer"
)

const version = "0.2.0"

type options struct {
	headers   []string
	output    string
	authFile  string
	envPrefix string
	forceTLS  bool
	format    string
	cfgFile   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "gqlschema [flags] <endpoint>",
		Short:         "Fetch a GraphQL schema via introspection and print it as SDL, JSON or Markdown",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "request header as key=value (repeatable)")
	flags.StringVarP(&opts.output, "output", "o", "", "write the result to a file instead of stdout")
	flags.StringVarP(&opts.authFile, "auth-file", "a", "", "JSON file with header name/value pairs")
	flags.StringVar(&opts.envPrefix, "auth-env-prefix", headers.DefaultEnvPrefix, "prefix of environment variables carrying extra headers")
	flags.BoolVar(&opts.forceTLS, "force-tls-validation", false, "fail on untrusted certificates instead of retrying insecurely")
	flags.StringVarP(&opts.format, "format", "f", string(printer.FormatSDL), "output format: graphql, json or markdown")
	flags.StringVar(&opts.cfgFile, "config", "", "path to a gqlschema config file")

	return cmd
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var hinted interface{ Hints() []string }
		if errors.As(err, &hinted) {
			for _, hint := range hinted.Hints() {
				fmt.Fprintln(os.Stderr, "  - "+hint)
			}
		}
		os.Exit(1)
	}
}
