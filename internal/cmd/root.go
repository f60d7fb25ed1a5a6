package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dnaka91/cargo-hatch/internal/config"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE. Commands that need the settings call
	// loadedConfig so that a broken file only fails those commands.
	hatchConfig    *config.Config
	hatchConfigErr error
)

// NewRootCmd creates the root command for the cargo-hatch CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cargo-hatch",
		Short: "Cargo init, but a lot more flexible",
		Long: `cargo-hatch creates new Rust projects from templates.

A template is a directory, local or in a git repository, with a .hatch.toml
file that declares the settings the operator is asked for. Every file is
rendered with the answers and written to the new project directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the settings file (env: "+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewGitCmd())
	rootCmd.AddCommand(NewLocalCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewManpagesCmd(rootCmd))

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	// Load configuration first so we can use config values for logging setup
	hatchConfig, hatchConfigErr = config.NewLoader().Load(configFlag)

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if hatchConfig != nil && hatchConfig.Log.Timestamps != nil {
		logCfg.Timestamps = hatchConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if hatchConfigErr != nil {
		output.Debug("config load error", "error", hatchConfigErr)
	} else {
		output.Debug("initializing CLI",
			"config", configFlag,
			"bookmarks", len(hatchConfig.Bookmarks),
			"cache", config.GetCacheDir(),
		)
	}

	return nil
}

// loadedConfig returns the settings loaded at startup, or the error that
// occurred while loading them.
func loadedConfig() (*config.Config, error) {
	if hatchConfigErr != nil {
		return nil, hatchConfigErr
	}
	if hatchConfig == nil {
		return &config.Config{}, nil
	}
	return hatchConfig, nil
}
