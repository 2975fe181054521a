// Package headers resolves the request header set from command-line flags,
// environment variables and an optional auth file. The sources overlay each
// other in a fixed order; the auth file is the most authoritative.
package headers

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	json "encoding/json/v2"
)

// DefaultEnvPrefix marks environment variables that carry headers.
const DefaultEnvPrefix = "GRAPHQL_HEADER_"

// Set maps header names to values, preserving the casing each source used.
type Set map[string]string

type Options struct {
	// ConfigHeaders come from the project config file and sit below every
	// other explicit source.
	ConfigHeaders map[string]string
	// CLIHeaders are raw "key=value" strings from repeated -H flags.
	CLIHeaders []string
	// EnvPrefix selects the environment variables to derive headers from.
	EnvPrefix string
	// AuthFile is an optional path to a flat JSON object of headers.
	AuthFile string
}

// Resolve builds the final header set. Precedence, later wins:
// Content-Type default < config file < command line < environment < auth
// file. Malformed entries in any source are skipped with a warning and never
// abort the run.
func Resolve(opts Options) Set {
	set := Set{"Content-Type": "application/json"}

	set.merge(opts.ConfigHeaders)
	set.merge(fromCLI(opts.CLIHeaders))
	set.merge(fromEnv(os.Environ(), opts.EnvPrefix))
	if opts.AuthFile != "" {
		set.merge(fromAuthFile(opts.AuthFile))
	}

	return set
}

// merge overlays a layer onto the set. Header names compare
// case-insensitively, the incoming casing is kept.
func (s Set) merge(layer map[string]string) {
	for name, value := range layer {
		for existing := range s {
			if existing != name && strings.EqualFold(existing, name) {
				delete(s, existing)
			}
		}
		s[name] = value
	}
}

// fromCLI parses repeated "key=value" flags, splitting on the first "=" so
// values may themselves contain "=" (base64 tokens and the like).
func fromCLI(raw []string) Set {
	set := make(Set, len(raw))
	for _, entry := range raw {
		key, value, found := strings.Cut(entry, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !found || key == "" || value == "" {
			slog.Warn("ignoring malformed header flag, expected key=value", "header", entry)
			continue
		}
		set[key] = value
	}

	return set
}

// fromEnv derives headers from environment variables carrying the prefix.
func fromEnv(environ []string, prefix string) Set {
	set := Set{}
	if prefix == "" {
		return set
	}

	for _, entry := range environ {
		name, value, _ := strings.Cut(entry, "=")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		header := headerName(strings.TrimPrefix(name, prefix))
		if header == "" {
			continue
		}
		set[header] = value
	}

	return set
}

// headerName turns an environment variable suffix into a header name:
// underscores become dashes, the first segment is lower-cased and every
// following segment is title-cased. X_API_KEY -> x-Api-Key.
func headerName(suffix string) string {
	var segments []string
	for _, segment := range strings.Split(suffix, "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) == 0 {
		return ""
	}

	parts := make([]string, 0, len(segments))
	parts = append(parts, strings.ToLower(segments[0]))
	for _, segment := range segments[1:] {
		parts = append(parts, strings.ToUpper(segment[:1])+strings.ToLower(segment[1:]))
	}

	return strings.Join(parts, "-")
}

// fromAuthFile reads a flat JSON object of header name/value pairs. Any
// failure degrades to an empty contribution with a cause-specific warning;
// auth problems surface later as HTTP errors with better diagnostics.
func fromAuthFile(path string) Set {
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn(authFileWarning(err), "path", path)
		return Set{}
	}

	var set Set
	if err := json.Unmarshal(content, &set); err != nil {
		slog.Warn("auth file is not a valid JSON object of string to string, ignoring it", "path", path, "error", err)
		return Set{}
	}

	return set
}

func authFileWarning(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "auth file does not exist, continuing without it"
	case errors.Is(err, fs.ErrPermission):
		return "auth file is not readable (permission denied), continuing without it"
	default:
		return fmt.Sprintf("auth file could not be read (%v), continuing without it", err)
	}
}
