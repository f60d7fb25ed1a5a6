package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dnaka91/cargo-hatch/internal/config"
	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <bookmark> [name]",
		Short: "Create a new project from a bookmarked template",
		Long: `Create a new project from a template registered as bookmark in the
settings file.

A bookmark pointing to a git URL is cloned into the cache directory, or
updated if it was cloned before. A bookmark pointing to a local directory is
used as is. Defaults configured on the bookmark pre-answer template settings.

Examples:
  # Create ./my-app from the "cli" bookmark
  cargo-hatch new cli my-app

  # Generate into the current directory
  cargo-hatch new cli`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runNew,
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, func(cfg *config.Config) (generateRequest, error) {
		bookmark, err := cfg.Bookmark(args[0])
		if err != nil {
			return generateRequest{}, err
		}

		dir, err := bookmarkDir(cmd, cfg, bookmark)
		if err != nil {
			return generateRequest{}, err
		}

		output.Debug("using bookmark", "name", args[0], "repository", bookmark.Repository, "path", dir)

		return generateRequest{
			TemplateDir: dir,
			Name:        projectNameArg(args, 1),
			Bookmark:    bookmark,
		}, nil
	})
}

// bookmarkDir returns the local template directory of a bookmark, fetching
// remote repositories first.
func bookmarkDir(cmd *cobra.Command, cfg *config.Config, b config.Bookmark) (string, error) {
	if !b.IsLocal() {
		return fetchTemplate(cmd.Context(), cfg, b.Repository, b.Folder)
	}

	path, err := b.LocalPath()
	if err != nil {
		return "", oerrors.WrapIO(err, "resolving "+b.Repository)
	}

	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return "", oerrors.NewNotFoundError(
			"bookmark repository is neither a git URL nor a local directory",
			b.Repository,
			"use a git@ or https:// URL, or an existing directory",
		)
	}

	return joinFolder(path, b.Folder), nil
}
