package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

// NewManpagesCmd creates the manpages command. It needs the root command to
// generate pages for the whole tree.
func NewManpagesCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "manpages <dir>",
		Short:  "Generate man pages for all commands",
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return reportError(writeManpages(root, args[0]))
		},
	}
}

func writeManpages(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.WrapIO(err, "creating "+dir)
	}

	header := &doc.GenManHeader{
		Title:   "CARGO-HATCH",
		Section: "1",
		Source:  "cargo-hatch",
		Manual:  "cargo-hatch manual",
	}

	root.DisableAutoGenTag = true
	if err := doc.GenManTree(root, header, dir); err != nil {
		return fmt.Errorf("generating man pages: %w", err)
	}

	output.Info("generated man pages", "dir", dir)
	return nil
}
