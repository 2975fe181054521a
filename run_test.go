package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func introspectionServer(t *testing.T) *httptest.Server {
	t.Helper()

	response, err := os.ReadFile("testdata/introspection_response.json")
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(response)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	return cmd.ExecuteContext(context.Background())
}

func TestRunWritesSDLToFile(t *testing.T) {
	srv := introspectionServer(t)
	out := filepath.Join(t.TempDir(), "schema.graphql")

	if err := execute(t, srv.URL, "--output", out); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"type Query {", "hello: String", "enum Role {", "ADMIN"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("SDL output missing %q:\n%s", want, content)
		}
	}
}

func TestRunMarkdownFormat(t *testing.T) {
	srv := introspectionServer(t)
	out := filepath.Join(t.TempDir(), "schema.md")

	if err := execute(t, srv.URL, "-f", "markdown", "-o", out); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# GraphQL Schema", "### User", "| role | `Role` |"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Markdown output missing %q:\n%s", want, content)
		}
	}
}

func TestRunJSONFormatIsIndented(t *testing.T) {
	srv := introspectionServer(t)
	out := filepath.Join(t.TempDir(), "schema.json")

	if err := execute(t, srv.URL, "-f", "json", "-o", out); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "  \"__schema\"") {
		t.Errorf("JSON output is not indented:\n%s", content)
	}
}

func TestRunNotFoundEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	err := execute(t, srv.URL)
	if err == nil || !strings.Contains(err.Error(), "Not Found") {
		t.Errorf("execute() error = %v, want one containing %q", err, "Not Found")
	}
}

func TestRunGraphQLErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"introspection is disabled"}]}`))
	}))
	t.Cleanup(srv.Close)

	err := execute(t, srv.URL)
	if err == nil || !strings.Contains(err.Error(), "introspection is disabled") {
		t.Errorf("execute() error = %v, want the GraphQL error surfaced", err)
	}
}

func TestRunMissingOutputDirectory(t *testing.T) {
	srv := introspectionServer(t)
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "schema.graphql")

	err := execute(t, srv.URL, "-o", out)

	var wErr *writeError
	if !errors.As(err, &wErr) {
		t.Fatalf("execute() error = %v, want *writeError", err)
	}
	if hints := strings.Join(wErr.Hints(), " "); !strings.Contains(hints, "does not exist") {
		t.Errorf("Hints() = %v, want a missing-directory hint", wErr.Hints())
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("no partial output file may be created on a fatal path")
	}
}

func TestRunEndpointFromConfigFile(t *testing.T) {
	srv := introspectionServer(t)

	cfgPath := filepath.Join(t.TempDir(), "gqlschema.yml")
	out := filepath.Join(t.TempDir(), "schema.graphql")
	cfg := "endpoint:\n  url: " + srv.URL + "\noutput: " + out + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "--config", cfgPath); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "type Query {") {
		t.Errorf("SDL output missing the query type:\n%s", content)
	}
}

func TestRunMissingEndpoint(t *testing.T) {
	err := execute(t)
	if err == nil || !strings.Contains(err.Error(), "endpoint URL required") {
		t.Errorf("execute() error = %v, want missing-endpoint failure", err)
	}
}
