package templates

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/settings"
)

// IgnoreFileName is the tool specific ignore file.
const IgnoreFileName = ".hatchignore"

// ignoreFiles are read in every directory, later files taking precedence.
var ignoreFiles = []string{".gitignore", ".ignore", IgnoreFileName}

// alwaysExcluded never ends up in the output.
var alwaysExcluded = map[string]bool{
	".git":            true,
	settings.FileName: true,
	IgnoreFileName:    true,
}

// Collect walks root and returns its regular files in lexical order with
// their initial classification. Ignore files in any directory apply to that
// directory and everything below it.
func Collect(root string) ([]RepoFile, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, oerrors.WrapIO(err, "resolving "+root)
	}

	var (
		files    []RepoFile
		patterns []gitignore.Pattern
		ignored  int
	)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if rel != "." {
			if alwaysExcluded[d.Name()] {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			components := strings.Split(filepath.ToSlash(rel), "/")
			if gitignore.NewMatcher(patterns).Match(components, d.IsDir()) {
				ignored++
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			var domain []string
			if rel != "." {
				domain = strings.Split(filepath.ToSlash(rel), "/")
			}
			found, err := readIgnoreFiles(path, domain)
			if err != nil {
				return err
			}
			patterns = append(patterns, found...)
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		files = append(files, RepoFile{
			Source: path,
			Name:   filepath.ToSlash(rel),
			Class:  Classify(path),
		})
		return nil
	})
	if err != nil {
		return nil, oerrors.WrapIO(err, "collecting template files in "+root)
	}

	output.Debug("collected template files", "root", root, "files", len(files), "ignored", ignored)
	return files, nil
}

// readIgnoreFiles parses the ignore files of dir. Patterns only apply below
// domain.
func readIgnoreFiles(dir string, domain []string) ([]gitignore.Pattern, error) {
	var patterns []gitignore.Pattern

	for _, name := range ignoreFiles {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gitignore.ParsePattern(line, domain))
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, err
		}
	}

	return patterns, nil
}
