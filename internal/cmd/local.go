package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dnaka91/cargo-hatch/internal/config"
	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
)

// NewLocalCmd creates the local command.
func NewLocalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "local <path> [name]",
		Short: "Create a new project from a template on the local machine",
		Long: `Create a new project from a template directory on the local machine.

Examples:
  cargo-hatch local ~/templates/cli my-app`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runLocal,
	}
}

func runLocal(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, func(_ *config.Config) (generateRequest, error) {
		path, err := config.ExpandPath(args[0])
		if err != nil {
			return generateRequest{}, err
		}

		dir, err := filepath.Abs(path)
		if err != nil {
			return generateRequest{}, oerrors.WrapIO(err, "resolving "+args[0])
		}

		return generateRequest{
			TemplateDir: dir,
			Name:        projectNameArg(args, 1),
		}, nil
	})
}
