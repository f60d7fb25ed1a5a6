package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show cargo-hatch version information.

Displays:
  - cargo-hatch version, commit, and build date
  - Go version the binary was built with`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	output.Println(version.Get().String())
	return nil
}
