// Package config provides loading of the global cargo-hatch settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/settings"
)

// GitConfig contains settings for git access and the author identity.
type GitConfig struct {
	// SSHKey is a private key used for SSH remotes instead of the SSH agent.
	SSHKey string `mapstructure:"ssh_key" json:"ssh_key,omitempty" yaml:"ssh_key,omitempty"`

	// Name overrides user.name from the git configuration.
	Name string `mapstructure:"name" json:"name,omitempty" yaml:"name,omitempty"`

	// Email overrides user.email from the git configuration.
	Email string `mapstructure:"email" json:"email,omitempty" yaml:"email,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Bookmark is a named template source.
type Bookmark struct {
	// Repository is a git URL or a local directory.
	Repository string `mapstructure:"repository" json:"repository" yaml:"repository"`

	Description string `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`

	// Folder selects a sub directory of the repository as template root.
	Folder string `mapstructure:"folder" json:"folder,omitempty" yaml:"folder,omitempty"`

	// Defaults pre-answers template settings by name.
	Defaults map[string]settings.DefaultSetting `mapstructure:"defaults" json:"defaults,omitempty" yaml:"defaults,omitempty"`
}

// IsLocal reports whether the repository points to a local directory.
func (b Bookmark) IsLocal() bool {
	if strings.HasPrefix(b.Repository, "git@") || strings.Contains(b.Repository, "://") {
		return false
	}
	return true
}

// LocalPath returns the repository as an absolute path with ~ expanded.
func (b Bookmark) LocalPath() (string, error) {
	path, err := ExpandPath(b.Repository)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// DefaultsFor returns the bookmark defaults keyed by the given setting names.
// Keys in the settings file are case-insensitive, so names are matched
// ignoring case.
func (b Bookmark) DefaultsFor(names []string) map[string]settings.DefaultSetting {
	if len(b.Defaults) == 0 {
		return nil
	}

	lower := make(map[string]settings.DefaultSetting, len(b.Defaults))
	for k, v := range b.Defaults {
		lower[strings.ToLower(k)] = v
	}

	out := make(map[string]settings.DefaultSetting, len(b.Defaults))
	for _, name := range names {
		if d, ok := b.Defaults[name]; ok {
			out[name] = d
		} else if d, ok := lower[strings.ToLower(name)]; ok {
			out[name] = d
		}
	}
	return out
}

// Config represents the global settings file.
type Config struct {
	Git GitConfig `mapstructure:"git" json:"git" yaml:"git"`

	Log LogConfig `mapstructure:"log" json:"log" yaml:"log"`

	// Bookmarks maps names usable with `cargo-hatch new` to templates.
	Bookmarks map[string]Bookmark `mapstructure:"bookmarks" json:"bookmarks,omitempty" yaml:"bookmarks,omitempty"`
}

// BookmarkNames returns the bookmark names sorted.
func (c *Config) BookmarkNames() []string {
	names := make([]string, 0, len(c.Bookmarks))
	for name := range c.Bookmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bookmark looks up a bookmark by name.
func (c *Config) Bookmark(name string) (Bookmark, error) {
	b, ok := c.Bookmarks[strings.ToLower(name)]
	if !ok {
		b, ok = c.Bookmarks[name]
	}
	if !ok {
		hint := "add it under [bookmarks] in the settings file"
		if names := c.BookmarkNames(); len(names) > 0 {
			hint = "available bookmarks: " + strings.Join(names, ", ")
		}
		return Bookmark{}, oerrors.NewNotFoundError(fmt.Sprintf("bookmark %q not found", name), "", hint)
	}
	return b, nil
}

// Validate checks that every bookmark has a repository.
func (c *Config) Validate() error {
	for _, name := range c.BookmarkNames() {
		b := c.Bookmarks[name]
		if strings.TrimSpace(b.Repository) == "" {
			return oerrors.NewConfigError(
				"bookmark has no repository", "", "bookmarks."+name+".repository",
				"set repository to a git URL or a local directory",
			)
		}
		if b.Folder != "" && filepath.IsAbs(b.Folder) {
			return oerrors.NewConfigError(
				"folder must be relative to the repository", "", "bookmarks."+name+".folder", "",
			)
		}
	}

	if c.Git.SSHKey != "" {
		if _, err := os.Stat(c.Git.SSHKey); err != nil {
			return oerrors.NewConfigError(
				fmt.Sprintf("ssh key not readable: %v", err), c.Git.SSHKey, "git.ssh_key", "",
			)
		}
	}
	return nil
}
