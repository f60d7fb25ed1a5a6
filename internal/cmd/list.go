package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dnaka91/cargo-hatch/internal/config"
	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

var listOutputFlag string

// bookmarkEntry is one row of the list output.
type bookmarkEntry struct {
	Name        string `json:"name" yaml:"name"`
	Repository  string `json:"repository" yaml:"repository"`
	Folder      string `json:"folder,omitempty" yaml:"folder,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configured bookmarks",
		Long: `List all bookmarks of the settings file with their descriptions.

Examples:
  cargo-hatch list
  cargo-hatch list -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutputFlag, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	format, ok := output.ParseOutputFormat(listOutputFlag)
	if !ok {
		return reportError(oerrors.NewConfigError(
			fmt.Sprintf("unknown output format: %s", listOutputFlag), "", "output",
			fmt.Sprintf("valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
		))
	}

	cfg, err := loadedConfig()
	if err != nil {
		return reportError(err)
	}

	return reportError(writeBookmarks(cmd.OutOrStdout(), cfg, format))
}

func bookmarkEntries(cfg *config.Config) []bookmarkEntry {
	names := cfg.BookmarkNames()
	entries := make([]bookmarkEntry, 0, len(names))
	for _, name := range names {
		b := cfg.Bookmarks[name]
		entries = append(entries, bookmarkEntry{
			Name:        name,
			Repository:  b.Repository,
			Folder:      b.Folder,
			Description: b.Description,
		})
	}
	return entries
}

func writeBookmarks(w io.Writer, cfg *config.Config, format output.OutputFormat) error {
	entries := bookmarkEntries(cfg)

	switch format {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(entries) == 0 {
		output.Info("no bookmarks configured", "config", config.GetConfigFile())
		return nil
	}

	var tbl output.BookmarkTable
	for _, e := range entries {
		tbl.Add(e.Name, e.Repository, e.Folder, e.Description)
	}

	_, err := fmt.Fprintln(w, tbl.String())
	return err
}
