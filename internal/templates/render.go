package templates

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/vars"
)

// Compile parses every file classified Template into one template set, each
// named by its relative path. Nothing is written when any file fails.
func Compile(files []RepoFile, vc *vars.Context) (*template.Template, error) {
	root := template.New("").Funcs(vc.FuncMap())

	for _, f := range files {
		if f.Class != Template {
			continue
		}

		content, err := os.ReadFile(f.Source)
		if err != nil {
			return nil, oerrors.WrapIO(err, "reading template "+f.Name)
		}

		if _, err := root.New(f.Name).Parse(string(content)); err != nil {
			return nil, oerrors.WrapConfig(err, "compiling template "+f.Name)
		}
	}

	return root, nil
}

// Render compiles the templates and writes every non-skipped file below
// target, in file order. Files written before a failure are left in place.
func Render(files []RepoFile, vc *vars.Context, target string) error {
	tmpl, err := Compile(files, vc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return oerrors.WrapIO(err, "creating "+target)
	}

	data := vc.Map()
	for _, f := range files {
		if f.Class == Skip {
			continue
		}

		dest := filepath.Join(target, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return oerrors.WrapIO(err, "creating directory for "+f.Name)
		}

		switch f.Class {
		case Template:
			err = renderFile(tmpl, f.Name, data, dest)
		case CopyVerbatim:
			err = copyFile(f.Source, dest)
		}
		if err != nil {
			return err
		}

		output.Debug("wrote file", "file", f.Name, "status", f.Class)
	}

	return nil
}

func renderFile(tmpl *template.Template, name string, data map[string]any, dest string) error {
	file, err := os.Create(dest)
	if err != nil {
		return oerrors.WrapIO(err, "creating "+name)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return oerrors.WrapConfig(err, "rendering "+name)
	}
	if err := w.Flush(); err != nil {
		return oerrors.WrapIO(err, "writing "+name)
	}
	return file.Close()
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return oerrors.WrapIO(err, "opening "+src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return oerrors.WrapIO(err, "reading "+src)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return oerrors.WrapIO(err, "creating "+dest)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("copying %s to %s", src, dest))
	}
	return out.Close()
}

// Summary maps each file name to its status word for the output tree.
func Summary(files []RepoFile) map[string]string {
	summary := make(map[string]string, len(files))
	for _, f := range files {
		summary[f.Name] = f.Class.String()
	}
	return summary
}
