// Package config loads the optional project config file. Flags always win
// over file values; the file only supplies defaults for repeated
// invocations against the same endpoint.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/gqlgo/gqlschema/printer"
)

// DefaultFilenames are searched in the working directory when --config is
// not given.
var DefaultFilenames = []string{".gqlschema.yml", "gqlschema.yml", ".gqlschema.yaml", "gqlschema.yaml"}

// Config represents the config file.
type Config struct {
	Endpoint *EndpointConfig `yaml:"endpoint,omitempty"`
	Format   string          `yaml:"format,omitempty"`
	Output   string          `yaml:"output,omitempty"`
}

// EndpointConfig are the allowed options for the 'endpoint' block.
type EndpointConfig struct {
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// FindConfigFile returns the first candidate filename that exists in dir,
// or os.ErrNotExist when none does.
func FindConfigFile(dir string, candidates []string) (string, error) {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads and parses a config file. Environment references in the file
// ($VAR or ${VAR}) are expanded before parsing so tokens never have to be
// committed.
func Load(filename string) (*Config, error) {
	configContent, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}

		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	if c.Format != "" {
		if _, err := printer.ParseFormat(c.Format); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return &c, nil
}

// Headers returns the endpoint headers block, if any.
func (c *Config) Headers() map[string]string {
	if c == nil || c.Endpoint == nil {
		return nil
	}

	return c.Endpoint.Headers
}

// URL returns the endpoint URL, if any.
func (c *Config) URL() string {
	if c == nil || c.Endpoint == nil {
		return ""
	}

	return c.Endpoint.URL
}
