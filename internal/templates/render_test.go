package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/prompt"
	"github.com/dnaka91/cargo-hatch/internal/settings"
	"github.com/dnaka91/cargo-hatch/internal/testutil"
	"github.com/dnaka91/cargo-hatch/internal/vars"
)

func TestRender_SubstitutesProjectName(t *testing.T) {
	src := t.TempDir()
	testutil.WriteFiles(t, src, map[string]string{"src/name.txt": "{{ project_name }}"})

	files, err := Collect(src)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "out")
	vc := newContext(t, map[string]any{vars.KeyProjectName: "demo"})
	require.NoError(t, Render(files, vc, target))

	got, err := os.ReadFile(filepath.Join(target, "src", "name.txt"))
	require.NoError(t, err)
	assert.Equal(t, "demo", string(got))
}

func TestRender_SkipsAndCopies(t *testing.T) {
	src := t.TempDir()
	testutil.WriteFiles(t, src, map[string]string{
		"keep.txt":    "{{ .name }}",
		"raw.txt":     "{{ not a template",
		"skipped.txt": "",
	})

	files := []RepoFile{
		{Source: filepath.Join(src, "keep.txt"), Name: "keep.txt", Class: Template},
		{Source: filepath.Join(src, "raw.txt"), Name: "raw.txt", Class: CopyVerbatim},
		{Source: filepath.Join(src, "skipped.txt"), Name: "skipped.txt", Class: Skip},
	}

	target := t.TempDir()
	require.NoError(t, Render(files, newContext(t, map[string]any{"name": "x"}), target))

	got, err := os.ReadFile(filepath.Join(target, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))

	got, err = os.ReadFile(filepath.Join(target, "raw.txt"))
	require.NoError(t, err)
	assert.Equal(t, "{{ not a template", string(got))

	assert.NoFileExists(t, filepath.Join(target, "skipped.txt"))
}

func TestRender_CompileErrorWritesNothing(t *testing.T) {
	src := t.TempDir()
	testutil.WriteFiles(t, src, map[string]string{
		"a.txt": "fine",
		"b.txt": "{{ if }}",
	})

	files, err := Collect(src)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "out")
	err = Render(files, newContext(t, nil), target)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.Contains(t, err.Error(), "b.txt")
	assert.NoDirExists(t, target)
}

func TestRender_ExecutionErrorNamesFile(t *testing.T) {
	src := t.TempDir()
	testutil.WriteFiles(t, src, map[string]string{"a.txt": `{{ fail "boom" }}`})

	files, err := Collect(src)
	require.NoError(t, err)

	err = Render(files, newContext(t, nil), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.NotErrorIs(t, err, oerrors.ErrIO)
	assert.Contains(t, err.Error(), "rendering a.txt")
}

// TestGenerate_Scenario runs the whole pipeline on a template with a text
// manifest, a binary image and one bool setting pre-filled from a default.
func TestGenerate_Scenario(t *testing.T) {
	src := t.TempDir()
	testutil.WriteFiles(t, src, map[string]string{
		settings.FileName: "[use_feature]\ndescription = \"Enable the feature?\"\ntype = \"bool\"\ndefault = true\n",
		"Cargo.toml":      "[package]\nname = \"{{ project_name }}\"\nfeature = {{ use_feature }}\n",
	})
	logo := append(append([]byte{}, pngHeader...), "{{ project_name }}"...)
	require.NoError(t, os.WriteFile(filepath.Join(src, "logo.png"), logo, 0o644))

	rs, err := settings.Load(src)
	require.NoError(t, err)
	rs.CrateType = settings.Ptr(settings.CrateBin)

	files, err := Collect(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cargo.toml", "logo.png"}, names(files))

	// the default pre-fills false, the operator accepts it with enter
	p := prompt.NewLine(stringsReader("\n"), &discard{})
	builtins := settings.Builtins{ProjectName: "demo", GitName: "Jane", GitEmail: "jane@example.com"}

	vc, err := settings.NewContext(context.Background(), rs, builtins, p)
	require.NoError(t, err)
	defaults := map[string]settings.DefaultSetting{"use_feature": {Value: false, SkipPrompt: false}}
	require.NoError(t, settings.FillContext(context.Background(), vc, rs.Settings, defaults, p))

	v, ok := vc.Get("use_feature")
	require.True(t, ok)
	assert.Equal(t, false, v)

	files, err = ApplyIgnoreRules(files, rs.Ignore, vc)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, Render(files, vc, target))

	manifest, err := os.ReadFile(filepath.Join(target, "Cargo.toml"))
	require.NoError(t, err)
	assert.Equal(t, "[package]\nname = \"demo\"\nfeature = false\n", string(manifest))

	copied, err := os.ReadFile(filepath.Join(target, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, logo, copied)

	assert.Equal(t, map[string]string{"Cargo.toml": "rendered", "logo.png": "copied"}, Summary(files))
}
