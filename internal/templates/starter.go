package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
)

//go:embed all:starter
var starterFS embed.FS

const starterRoot = "starter"

// StarterFiles returns the files of the starter template.
func StarterFiles() ([]string, error) {
	var files []string

	err := fs.WalkDir(starterFS, starterRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(starterRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(relPath))
		return nil
	})

	return files, err
}

// WriteStarter copies the starter template into dir without rendering it.
// Existing files are never overwritten.
func WriteStarter(dir string) ([]string, error) {
	files, err := StarterFiles()
	if err != nil {
		return nil, err
	}

	for _, name := range files {
		dest := filepath.Join(dir, filepath.FromSlash(name))
		if _, err := os.Stat(dest); err == nil {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("%s already exists", name), dest, "",
				"remove it or run init in an empty directory",
			)
		}
	}

	for _, name := range files {
		content, err := starterFS.ReadFile(starterRoot + "/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading starter %s: %w", name, err)
		}

		dest := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, oerrors.WrapIO(err, "creating directory for "+name)
		}
		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return nil, oerrors.WrapIO(err, "writing "+name)
		}
	}

	return files, nil
}
