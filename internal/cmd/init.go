package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
	"github.com/dnaka91/cargo-hatch/internal/templates"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [name]",
		Short: "Initialize a new template with a sample configuration",
		Long: `Initialize a new template with a sample .hatch.toml and a few example
files. Without a name the current directory is used.

Examples:
  cargo-hatch init my-template`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(_ *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return reportError(oerrors.WrapIO(err, "getting current directory"))
	}

	dir := cwd
	if name := projectNameArg(args, 0); name != "" {
		dir = filepath.Join(cwd, name)
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return reportError(oerrors.NewConfigError(
			"target appears to be an existing file", dir, "", "",
		))
	}

	files, err := templates.WriteStarter(dir)
	if err != nil {
		return reportError(err)
	}

	summary := make(map[string]string, len(files))
	for _, f := range files {
		summary[f] = output.StatusCopied
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created template in %s\n", dir)))
	output.Print(output.RenderFileTree(filepath.Base(dir), summary))

	return nil
}
