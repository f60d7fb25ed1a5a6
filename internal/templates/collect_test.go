package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnaka91/cargo-hatch/internal/testutil"
)

func TestCollect(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFiles(t, root, map[string]string{
		".hatch.toml":             "",
		".hatchignore":            "secret.txt\n",
		".gitignore":              "# build output\ntarget/\n*.log\n",
		"Cargo.toml":              "[package]\n",
		"src/main.rs":             "fn main() {}\n",
		"src/debug.log":           "noise",
		"src/nested/.ignore":      "generated.rs\n",
		"src/nested/mod.rs":       "",
		"src/nested/generated.rs": "",
		"generated.rs":            "",
		"target/debug/app":        "",
		"secret.txt":              "",
		".git/HEAD":               "ref: refs/heads/main\n",
	})
	require.NoError(t, os.WriteFile(filepath.Join(root, "logo.png"), pngHeader, 0o644))

	files, err := Collect(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		".gitignore",
		"Cargo.toml",
		"generated.rs",
		"logo.png",
		"src/main.rs",
		"src/nested/.ignore",
		"src/nested/mod.rs",
	}, names(files))

	got := classes(files)
	assert.Equal(t, Template, got["Cargo.toml"])
	assert.Equal(t, CopyVerbatim, got["logo.png"])

	for _, f := range files {
		assert.True(t, filepath.IsAbs(f.Source))
	}
}

func TestCollect_NegatedPattern(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFiles(t, root, map[string]string{
		".hatchignore": "*.md\n!README.md\n",
		"README.md":    "",
		"NOTES.md":     "",
	})

	files, err := Collect(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, names(files))
}

func TestCollect_MissingRoot(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
