// Package printer renders introspection data into the selected output
// format.
package printer

import (
	"fmt"

	"encoding/json/jsontext"
)

// Format selects the output representation.
type Format string

const (
	FormatSDL      Format = "graphql"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name from configuration.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatSDL, FormatJSON, FormatMarkdown:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown format %q (valid formats: graphql, json, markdown)", name)
	}
}

// Render converts the raw introspection data into the requested format.
// Rendering is deterministic: the same data and format always produce
// byte-identical output.
func Render(data jsontext.Value, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(data)
	case FormatMarkdown:
		return renderMarkdown(data)
	default:
		return renderSDL(data)
	}
}
