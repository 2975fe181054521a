package printer

import (
	"fmt"

	"encoding/json/jsontext"
	json "encoding/json/v2"
)

// renderJSON pretty-prints the raw introspection data with two-space
// indentation. The raw value is re-encoded as-is, so key order follows the
// server's response and repeated renders are byte-identical.
func renderJSON(data jsontext.Value) (string, error) {
	indented, err := json.Marshal(data, jsontext.WithIndent("  "))
	if err != nil {
		return "", fmt.Errorf("failed to format introspection data as JSON: %w", err)
	}

	return string(indented), nil
}
