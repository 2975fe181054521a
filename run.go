package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gqlgo/gqlschema/client"
	"github.com/gqlgo/gqlschema/config"
	"github.com/gqlgo/gqlschema/headers"
	"github.com/gqlgo/gqlschema/introspection"
	"github.com/gqlgo/gqlschema/printer"
)

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}

	endpoint := cfg.URL()
	if len(args) > 0 {
		endpoint = args[0]
	}
	if endpoint == "" {
		return errors.New("endpoint URL required (pass it as an argument or set endpoint.url in the config file)")
	}

	formatName := opts.format
	if !cmd.Flags().Changed("format") && cfg != nil && cfg.Format != "" {
		formatName = cfg.Format
	}
	format, err := printer.ParseFormat(formatName)
	if err != nil {
		return err
	}

	output := opts.output
	if !cmd.Flags().Changed("output") && cfg != nil && cfg.Output != "" {
		output = cfg.Output
	}

	headerSet := headers.Resolve(headers.Options{
		ConfigHeaders: cfg.Headers(),
		CLIHeaders:    opts.headers,
		EnvPrefix:     opts.envPrefix,
		AuthFile:      opts.authFile,
	})

	gqlClient := client.NewClient(endpoint, introspection.Query,
		client.WithHeaders(headerSet),
		client.WithForceTLSValidation(opts.forceTLS),
	)

	body, err := gqlClient.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("introspection of %s failed: %w", endpoint, err)
	}

	data, err := client.ParseResponse(body)
	if err != nil {
		return fmt.Errorf("introspection of %s failed: %w", endpoint, err)
	}

	rendered, err := printer.Render(data, format)
	if err != nil {
		return fmt.Errorf("failed to render schema: %w", err)
	}

	return writeOutput(rendered, output)
}

// loadConfig loads the explicitly requested config file, or searches the
// working directory for one. Having no config file at all is fine.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfigFile(".", config.DefaultFilenames)
		if err != nil {
			return nil, nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	return cfg, nil
}
