package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

// Loader reads the global settings file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file yields an empty configuration.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = GetConfigFile()
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("toml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewConfigError(err.Error(), expandedPath, "", "check the TOML syntax of the settings file")
		}
		output.Debug("no settings file, using defaults", "path", expandedPath)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewConfigError(err.Error(), expandedPath, "", "")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	output.Debug("loaded settings", "path", expandedPath, "bookmarks", len(cfg.Bookmarks))
	return &cfg, nil
}
