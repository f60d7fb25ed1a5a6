package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dnaka91/cargo-hatch/internal/config"
)

var gitFolderFlag string

// NewGitCmd creates the git command.
func NewGitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git <url> [name]",
		Short: "Create a new project from a template in a git repository",
		Long: `Create a new project from a template in a git repository.

The repository is cloned into the cache directory, or updated to the remote
head if it was cloned before. SSH remotes use the key configured under [git]
in the settings file, or the SSH agent.

Examples:
  cargo-hatch git git@github.com:owner/templates.git my-app --folder cli
  cargo-hatch git https://github.com/owner/template my-app`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runGit,
	}

	cmd.Flags().StringVar(&gitFolderFlag, "folder", "", "Sub directory of the repository that holds the template")

	return cmd
}

func runGit(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, func(cfg *config.Config) (generateRequest, error) {
		dir, err := fetchTemplate(cmd.Context(), cfg, args[0], gitFolderFlag)
		if err != nil {
			return generateRequest{}, err
		}

		return generateRequest{
			TemplateDir: dir,
			Name:        projectNameArg(args, 1),
		}, nil
	})
}
