package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteOutputToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.graphql")
	if err := writeOutput("type Query {\n\thello: String\n}\n", path); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "hello: String") {
		t.Errorf("file content = %q", content)
	}
}

func TestWriteOutputOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.graphql")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := writeOutput("fresh", path); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "fresh" {
		t.Errorf("file content = %q, want %q", content, "fresh")
	}
}

func TestWriteOutputClassification(t *testing.T) {
	t.Parallel()

	t.Run("missing parent directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "schema.graphql")
		err := writeOutput("content", path)
		if err == nil {
			t.Fatal("writeOutput() error = nil")
		}
		wErr, ok := err.(*writeError)
		if !ok {
			t.Fatalf("writeOutput() error = %T, want *writeError", err)
		}
		if hints := strings.Join(wErr.Hints(), " "); !strings.Contains(hints, "mkdir") {
			t.Errorf("Hints() = %v, want a mkdir suggestion", wErr.Hints())
		}
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()

		err := writeOutput("content", t.TempDir())
		if err == nil {
			t.Fatal("writeOutput() error = nil")
		}
		wErr, ok := err.(*writeError)
		if !ok {
			t.Fatalf("writeOutput() error = %T, want *writeError", err)
		}
		if hints := strings.Join(wErr.Hints(), " "); !strings.Contains(hints, "directory") {
			t.Errorf("Hints() = %v, want a directory hint", wErr.Hints())
		}
	})
}
