package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/testutil"
)

// executeRoot runs the root command with args and returns what it wrote to
// its output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		hatchConfig, hatchConfigErr = nil, nil
	})

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "cargo-hatch", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	for _, name := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"new", "git", "local", "list", "init", "version", "manpages"})
}

func TestRoot_BrokenConfigOnlyFailsCommandsUsingIt(t *testing.T) {
	cfgPath := writeConfig(t, "[bookmarks\n")

	_, err := executeRoot(t, "--config", cfgPath, "version")
	assert.NoError(t, err)

	_, err = executeRoot(t, "--config", cfgPath, "list")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitConfigError, oerrors.ExitCodeFromError(err))
}

func TestNewCmd_UnknownBookmark(t *testing.T) {
	cfgPath := writeConfig(t, `
[bookmarks.cli]
repository = "git@github.com:owner/templates.git"
`)

	_, err := executeRoot(t, "--config", cfgPath, "new", "web")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "cli")
}

func TestNewCmd_LocalBookmark(t *testing.T) {
	src := t.TempDir()
	testutil.WriteFile(t, src, "tpl/.hatch.toml", testTemplateConfig)
	for name, content := range testTemplateFiles {
		testutil.WriteFile(t, src, "tpl/"+name, content)
	}

	cfgPath := writeConfig(t, `
[git]
name = "Jane Doe"
email = "jane@example.com"

[bookmarks.demo]
repository = '`+src+`'
folder = "tpl"

[bookmarks.demo.defaults.edition]
value = "2018"
skip_prompt = true
`)

	work := t.TempDir()
	t.Chdir(work)
	useAnswers(t, "Generated from a bookmark\n")

	_, err := executeRoot(t, "--config", cfgPath, "new", "demo", "app")
	require.NoError(t, err)

	manifest, err := os.ReadFile(filepath.Join(work, "app", "Cargo.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `name = "app"`)
	assert.Contains(t, string(manifest), `edition = "2018"`)
	assert.Contains(t, string(manifest), `description = "Generated from a bookmark"`)
}

func TestNewCmd_MissingLocalDirectory(t *testing.T) {
	cfgPath := writeConfig(t, `
[bookmarks.gone]
repository = '`+filepath.Join(t.TempDir(), "missing")+`'
`)

	_, err := executeRoot(t, "--config", cfgPath, "new", "gone")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}

func TestLocalCmd(t *testing.T) {
	src := testutil.Template(t, testTemplateConfig, testTemplateFiles)
	// identity comes from the global git configuration
	testutil.GitIdentity(t, "John Roe", "john@example.com")
	cfgPath := writeConfig(t, "")

	work := t.TempDir()
	t.Chdir(work)
	useAnswers(t, "Local\n2\n")

	_, err := executeRoot(t, "--config", cfgPath, "local", src, "local-app")
	require.NoError(t, err)

	manifest, err := os.ReadFile(filepath.Join(work, "local-app", "Cargo.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `edition = "2021"`)
	assert.Contains(t, string(manifest), `description = "Local"`)
	assert.Contains(t, string(manifest), `authors = ["John Roe <john@example.com>"]`)
}

func TestLocalCmd_Cancelled(t *testing.T) {
	src := testutil.Template(t, testTemplateConfig, testTemplateFiles)
	cfgPath := writeConfig(t, "[git]\nname = \"Jane Doe\"\nemail = \"jane@example.com\"\n")

	t.Chdir(t.TempDir())
	useAnswers(t, "")

	_, err := executeRoot(t, "--config", cfgPath, "local", src, "app")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitCancelled, oerrors.ExitCodeFromError(err))
}

func TestGitCmd_InvalidURL(t *testing.T) {
	cfgPath := writeConfig(t, "")
	t.Setenv("HATCH_CACHE_DIR", t.TempDir())

	_, err := executeRoot(t, "--config", cfgPath, "git", "not-a-url")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitConfigError, oerrors.ExitCodeFromError(err))
}
