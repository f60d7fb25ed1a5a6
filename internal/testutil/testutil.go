// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteFiles creates every file of files, keyed by slash separated path,
// below dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
}

// Template creates a template directory with the given .hatch.toml and
// additional files.
func Template(t *testing.T, hatchToml string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, ".hatch.toml", hatchToml)
	WriteFiles(t, dir, files)
	return dir
}

// GitIdentity points git at a fresh global configuration with a known
// author, so tests do not depend on the machine they run on.
func GitIdentity(t *testing.T, name, email string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	WriteFile(t, home, ".gitconfig", "[user]\n\tname = "+name+"\n\temail = "+email+"\n")
}
