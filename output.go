package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// writeError reports a failed file write together with targeted remediation
// hints.
type writeError struct {
	path  string
	err   error
	hints []string
}

func (e *writeError) Error() string {
	return fmt.Sprintf("failed to write output to %s: %v", e.path, e.err)
}

func (e *writeError) Unwrap() error { return e.err }

func (e *writeError) Hints() []string { return e.hints }

// writeOutput delivers the rendered schema: to stdout when path is empty,
// otherwise to the file, overwriting it. The confirmation notice goes to
// stderr so stdout stays clean for pipes.
func writeOutput(content, path string) error {
	if path == "" {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if _, err := os.Stdout.WriteString(content); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return classifyWriteError(path, err)
	}

	slog.Info("schema written", "path", path)

	return nil
}

func classifyWriteError(path string, err error) *writeError {
	dir := filepath.Dir(path)

	var hints []string
	switch {
	case targetIsDirectory(path):
		hints = []string{
			fmt.Sprintf("%s is a directory; pass a file name to --output", path),
		}
	case directoryMissing(dir):
		hints = []string{
			fmt.Sprintf("The directory %s does not exist; create it first (e.g. mkdir -p %s)", dir, dir),
		}
	case errors.Is(err, fs.ErrPermission):
		hints = []string{
			fmt.Sprintf("Permission denied; check write access to %s or choose another location", dir),
		}
	default:
		hints = []string{
			"Check that the output path is valid and writable",
		}
	}

	return &writeError{path: path, err: err, hints: hints}
}

func targetIsDirectory(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func directoryMissing(dir string) bool {
	_, err := os.Stat(dir)

	return errors.Is(err, fs.ErrNotExist)
}
