// Package e2e provides end-to-end tests for the cargo-hatch CLI.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hatchBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "cargo-hatch-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	hatchBinary = filepath.Join(tmpDir, "cargo-hatch")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", hatchBinary, "../../cmd/cargo-hatch")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build cargo-hatch binary: " + err.Error())
	}
	cancel() // Call cancel explicitly before os.Exit

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// env isolates the binary from the machine's git and cargo-hatch settings.
type env struct {
	home   string
	config string
}

func newEnv(t *testing.T, settings string) env {
	t.Helper()

	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"),
		[]byte("[user]\n\tname = E2E Tester\n\temail = e2e@example.com\n"), 0o644))

	config := filepath.Join(home, "settings.toml")
	require.NoError(t, os.WriteFile(config, []byte(settings), 0o644))

	return env{home: home, config: config}
}

// run runs the binary with the given stdin and arguments and returns output.
func (e env) run(t *testing.T, workDir, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, hatchBinary, args...)
	cmd.Dir = workDir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"XDG_CONFIG_HOME="+filepath.Join(e.home, ".config"),
		"HATCH_CONFIG="+e.config,
		"HATCH_CACHE_DIR="+filepath.Join(e.home, "cache"),
	)

	stdoutBytes, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr = string(exitErr.Stderr)
	}

	return string(stdoutBytes), stderr, err
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}

func TestE2E_InitThenLocal(t *testing.T) {
	e := newEnv(t, "")
	work := t.TempDir()

	_, stderr, err := e.run(t, work, "", "init", "tpl")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(work, "tpl", ".hatch.toml"))

	// crate type: bin, description, edition default, serde default, licenses default
	answers := "1\nA starter crate\n\n\n\n"
	stdout, stderr, err := e.run(t, work, answers, "local", filepath.Join(work, "tpl"), "demo")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "demo")

	project := filepath.Join(work, "demo")
	manifest, err := os.ReadFile(filepath.Join(project, "Cargo.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `name = "demo"`)
	assert.Contains(t, string(manifest), `description = "A starter crate"`)
	assert.Contains(t, string(manifest), "E2E Tester <e2e@example.com>")

	assert.FileExists(t, filepath.Join(project, "src", "main.rs"))
	assert.NoFileExists(t, filepath.Join(project, "src", "lib.rs"))
	assert.NoFileExists(t, filepath.Join(project, "README.md"), "excluded by .hatchignore")
	assert.DirExists(t, filepath.Join(project, ".git"))
}

func TestE2E_Local_EndOfInputCancels(t *testing.T) {
	e := newEnv(t, "")
	work := t.TempDir()

	_, stderr, err := e.run(t, work, "", "init", "tpl")
	require.NoError(t, err, "stderr: %s", stderr)

	_, _, err = e.run(t, work, "", "local", filepath.Join(work, "tpl"), "demo")
	require.Error(t, err)
	assert.Equal(t, 130, exitCode(err))
	assert.NoDirExists(t, filepath.Join(work, "demo"))
}

func TestE2E_List(t *testing.T) {
	e := newEnv(t, `
[bookmarks.cli]
repository = "git@github.com:owner/templates.git"
folder = "cli"
description = "Command line tool"
`)

	stdout, stderr, err := e.run(t, t.TempDir(), "", "list", "-o", "json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.JSONEq(t,
		`[{"name":"cli","repository":"git@github.com:owner/templates.git","folder":"cli","description":"Command line tool"}]`,
		stdout)
}

func TestE2E_New_UnknownBookmark(t *testing.T) {
	e := newEnv(t, "")

	_, stderr, err := e.run(t, t.TempDir(), "", "new", "missing")
	require.Error(t, err)
	assert.Equal(t, 5, exitCode(err))
	assert.Contains(t, stderr, "missing")
}

func TestE2E_Version(t *testing.T) {
	e := newEnv(t, "")

	stdout, _, err := e.run(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cargo-hatch")
}

func TestE2E_Help(t *testing.T) {
	e := newEnv(t, "")

	stdout, _, err := e.run(t, t.TempDir(), "", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "new")
	assert.Contains(t, stdout, "local")
	assert.Contains(t, stdout, "list")
}
