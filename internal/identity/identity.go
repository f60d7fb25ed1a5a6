// Package identity determines the author written into generated projects.
package identity

import (
	"fmt"

	"github.com/go-git/go-git/v5/config"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

// Author is a git author identity.
type Author struct {
	Name  string
	Email string
}

// String formats the author as "name <email>".
func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Complete reports whether both name and email are known.
func (a Author) Complete() bool {
	return a.Name != "" && a.Email != ""
}

// loadScope is replaced in tests.
var loadScope = config.LoadConfig

// Resolve returns the author identity. Non-empty fields of override win over
// the global git configuration, which in turn wins over the system one.
func Resolve(override Author) (Author, error) {
	author := override

	for _, scope := range []config.Scope{config.GlobalScope, config.SystemScope} {
		if author.Complete() {
			break
		}

		cfg, err := loadScope(scope)
		if err != nil {
			output.Debug("reading git config failed", "scope", scope, "error", err)
			continue
		}
		if author.Name == "" {
			author.Name = cfg.User.Name
		}
		if author.Email == "" {
			author.Email = cfg.User.Email
		}
	}

	if !author.Complete() {
		return Author{}, oerrors.NewConfigError(
			"could not determine the git author name and email",
			"", "user.name/user.email",
			"run 'git config --global user.name \"Your Name\"' and 'git config --global user.email you@example.com', or set [git] name and email in the settings file",
		)
	}

	output.Debug("resolved git author", "author", author.String())
	return author, nil
}
