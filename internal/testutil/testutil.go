// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes body as config.toml under dir and returns its path.
// An empty body returns the path without creating the file.
func WriteConfig(t *testing.T, dir string, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if body == "" {
		return path
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// MissingPath returns a path under dir that does not exist.
func MissingPath(t *testing.T, dir string, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected %s to be missing", path)
	}
	return path
}
