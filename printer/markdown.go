package printer

import (
	"fmt"
	"strings"

	"encoding/json/jsontext"
	json "encoding/json/v2"

	"github.com/gqlgo/gqlschema/introspection"
)

// renderMarkdown produces a Markdown document with one subsection per
// non-internal type: its description, a field table when the type has
// fields, and a value table when it is an enum.
func renderMarkdown(data jsontext.Value) (string, error) {
	var result introspection.Data
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("introspection data has an unexpected shape: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# GraphQL Schema\n\n")
	sb.WriteString("## Types\n")

	for _, typ := range result.Schema.Types {
		if typ.Name == nil || typ.Internal() {
			continue
		}
		writeType(&sb, typ)
	}

	return sb.String(), nil
}

func writeType(sb *strings.Builder, typ *introspection.FullType) {
	fmt.Fprintf(sb, "\n### %s\n", *typ.Name)

	if desc := describe(typ.Description); desc != "" {
		sb.WriteString("\n" + desc + "\n")
	}

	if len(typ.Fields) > 0 {
		sb.WriteString("\n| Field | Type | Description |\n")
		sb.WriteString("| --- | --- | --- |\n")
		for _, field := range typ.Fields {
			fmt.Fprintf(sb, "| %s | `%s` | %s |\n",
				cell(field.Name), field.Type.String(), cell(describe(field.Description)))
		}
	}

	if len(typ.EnumValues) > 0 {
		sb.WriteString("\n| Value | Description |\n")
		sb.WriteString("| --- | --- |\n")
		for _, value := range typ.EnumValues {
			fmt.Fprintf(sb, "| %s | %s |\n", cell(value.Name), cell(describe(value.Description)))
		}
	}
}

func describe(desc *string) string {
	if desc == nil {
		return ""
	}

	return strings.TrimSpace(*desc)
}

// cell flattens a value into a single Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")

	return s
}
