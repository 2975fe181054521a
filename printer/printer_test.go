package printer

import (
	"strings"
	"testing"

	"encoding/json/jsontext"

	"github.com/google/go-cmp/cmp"
)

const helloWorldIntrospection = `{"__schema":{"queryType":{"name":"Query"},"types":[
  {"kind":"OBJECT","name":"Query","description":"Root query.","fields":[
    {"name":"hello","description":"A greeting.","args":[],"type":{"kind":"SCALAR","name":"String"},"isDeprecated":false}
  ],"interfaces":[]},
  {"kind":"SCALAR","name":"String","description":"Built-in String."}
],"directives":[]}}`

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"graphql", "json", "markdown"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", valid, err)
		}
	}

	if _, err := ParseFormat("yaml"); err == nil || !strings.Contains(err.Error(), "graphql, json, markdown") {
		t.Errorf("ParseFormat(yaml) error = %v, want one listing the valid formats", err)
	}
}

func TestRenderSDL(t *testing.T) {
	t.Parallel()

	got, err := Render(jsontext.Value(helloWorldIntrospection), FormatSDL)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"type Query {", "hello: String", `"""`} {
		if !strings.Contains(got, want) {
			t.Errorf("SDL output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderSDLSuppliesMissingQueryRoot(t *testing.T) {
	t.Parallel()

	data := `{"__schema":{"types":[{"kind":"SCALAR","name":"String"}],"directives":[]}}`

	got, err := Render(jsontext.Value(data), FormatSDL)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, "type Query") {
		t.Errorf("SDL output missing synthesized Query root:\n%s", got)
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	got, err := Render(jsontext.Value(`{"name":"Query","kinds":["OBJECT","SCALAR"]}`), FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `{
  "name": "Query",
  "kinds": [
    "OBJECT",
    "SCALAR"
  ]
}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	data := `{"__schema":{"queryType":{"name":"Query"},"types":[
	  {"kind":"OBJECT","name":"Query","description":"Root query.","fields":[
	    {"name":"hello","description":"A greeting.","args":[],"type":{"kind":"NON_NULL","ofType":{"kind":"SCALAR","name":"String"}},"isDeprecated":false}
	  ]},
	  {"kind":"ENUM","name":"Role","enumValues":[
	    {"name":"ADMIN","description":"Full access."},
	    {"name":"USER"}
	  ]},
	  {"kind":"OBJECT","name":"__Schema","fields":[{"name":"types","args":[],"type":{"kind":"SCALAR","name":"String"},"isDeprecated":false}]}
	],"directives":[]}}`

	got, err := Render(jsontext.Value(data), FormatMarkdown)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"# GraphQL Schema",
		"## Types",
		"### Query",
		"Root query.",
		"| Field | Type | Description |",
		"| hello | `String!` | A greeting. |",
		"### Role",
		"| Value | Description |",
		"| ADMIN | Full access. |",
		"| USER |  |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown output missing %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "__Schema") {
		t.Errorf("Markdown output should not list introspection types:\n%s", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatSDL, FormatJSON, FormatMarkdown} {
		first, err := Render(jsontext.Value(helloWorldIntrospection), format)
		if err != nil {
			t.Fatalf("Render(%s) error = %v", format, err)
		}
		second, err := Render(jsontext.Value(helloWorldIntrospection), format)
		if err != nil {
			t.Fatalf("Render(%s) error = %v", format, err)
		}
		if first != second {
			t.Errorf("Render(%s) is not deterministic", format)
		}
	}
}
