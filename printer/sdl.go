package printer

import (
	"fmt"
	"strings"

	"encoding/json/jsontext"
	json "encoding/json/v2"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/validator"

	"github.com/gqlgo/gqlschema/introspection"
)

// renderSDL builds a validated schema from the introspection data and prints
// it as canonical SDL.
func renderSDL(data jsontext.Value) (string, error) {
	var result introspection.Data
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("introspection data has an unexpected shape: %w", err)
	}

	schema, err := validator.ValidateSchemaDocument(introspection.SchemaFromIntrospection("introspection", result))
	if err != nil {
		return "", fmt.Errorf("introspected schema is not valid: %w", err)
	}

	// servers may report no query root; SDL still needs one
	if schema.Query == nil {
		schema.Query = &ast.Definition{
			Kind: ast.Object,
			Name: "Query",
		}
		schema.Types["Query"] = schema.Query
	}

	var sb strings.Builder
	formatter.NewFormatter(&sb).FormatSchema(schema)

	return sb.String(), nil
}
