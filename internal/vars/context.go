// Package vars holds the rendering context shared by settings, ignore rules
// and templates.
package vars

import (
	"fmt"
	"regexp"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
)

// Builtin context keys available to every template.
const (
	KeyProjectName = "project_name"
	KeyGitAuthor   = "git_author"
	KeyGitName     = "git_name"
	KeyGitEmail    = "git_email"
	KeyCrateType   = "crate_type"
	KeyCrateBin    = "crate_bin"
	KeyCrateLib    = "crate_lib"
)

// BuiltinKeys lists the keys set before any template setting is resolved.
var BuiltinKeys = []string{
	KeyProjectName,
	KeyGitAuthor,
	KeyGitName,
	KeyGitEmail,
	KeyCrateType,
	KeyCrateBin,
	KeyCrateLib,
}

// IsBuiltin reports whether key is one of BuiltinKeys.
func IsBuiltin(key string) bool {
	for _, k := range BuiltinKeys {
		if k == key {
			return true
		}
	}
	return false
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Context is an ordered, append-only mapping from keys to resolved values.
// Once frozen it rejects further inserts.
type Context struct {
	keys     []string
	values   map[string]any
	declared map[string]struct{}
	frozen   bool
}

// New creates an empty context.
func New() *Context {
	return &Context{
		values:   make(map[string]any),
		declared: make(map[string]struct{}),
	}
}

// Insert appends key with value. Keys can only be set once.
func (c *Context) Insert(key string, value any) error {
	if c.frozen {
		return fmt.Errorf("inserting %q: context is frozen", key)
	}
	if _, ok := c.values[key]; ok {
		return oerrors.Wrap(oerrors.ErrConfig, fmt.Sprintf("duplicate context key %q", key))
	}

	c.keys = append(c.keys, key)
	c.values[key] = value
	return nil
}

// Declare records names that templates may reference even when they never get
// a value, e.g. settings skipped by their condition.
func (c *Context) Declare(names ...string) {
	for _, name := range names {
		c.declared[name] = struct{}{}
	}
}

// Freeze makes the context read-only.
func (c *Context) Freeze() {
	c.frozen = true
}

// Frozen reports whether Freeze was called.
func (c *Context) Frozen() bool {
	return c.frozen
}

// Get returns the value stored under key.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key has a value.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of stored values.
func (c *Context) Len() int {
	return len(c.keys)
}

// Map returns a copy of the stored values. Declared names without a value are
// present with a nil value.
func (c *Context) Map() map[string]any {
	out := make(map[string]any, len(c.values)+len(c.declared))
	for name := range c.declared {
		out[name] = nil
	}
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
