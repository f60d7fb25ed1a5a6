package vars

import (
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/samber/lo"
)

// templateBuiltins are the functions and keywords of text/template itself.
var templateBuiltins = []string{
	"and", "call", "html", "index", "slice", "js", "len", "not", "or",
	"print", "printf", "println", "urlquery", "eq", "ge", "gt", "le", "lt", "ne",
	"block", "break", "continue", "define", "else", "end", "if", "range",
	"template", "with", "nil", "true", "false",
}

// IsFuncName reports whether name is taken by a template function or keyword
// and therefore cannot be a setting.
func IsFuncName(name string) bool {
	if name == "file_name" || lo.Contains(templateBuiltins, name) {
		return true
	}
	_, ok := sprig.TxtFuncMap()[name]
	return ok
}

// FuncMap returns the template functions: sprig, file_name and one zero
// argument accessor per identifier-shaped context key, so that both
// `{{ project_name }}` and `{{ .project_name }}` work.
func (c *Context) FuncMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["file_name"] = fileName

	for name, value := range c.Map() {
		if !identPattern.MatchString(name) {
			continue
		}
		v := value
		funcs[name] = func() any { return v }
	}

	return funcs
}

// fileName returns the last element of path.
func fileName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
