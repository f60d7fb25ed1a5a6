package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "cargo-hatch"

// Environment variables overriding the default locations.
const (
	EnvConfig   = "HATCH_CONFIG"
	EnvCacheDir = "HATCH_CACHE_DIR"
)

// Paths contains standard filesystem paths for cargo-hatch.
type Paths struct {
	// ConfigFile is the global settings file.
	ConfigFile string

	// CacheDir holds clones of remote templates.
	CacheDir string
}

// DefaultPaths returns the XDG based default paths.
func DefaultPaths() Paths {
	return Paths{
		ConfigFile: filepath.Join(xdg.ConfigHome, appName, "settings.toml"),
		CacheDir:   filepath.Join(xdg.CacheHome, appName),
	}
}

// GetConfigFile returns the config file path.
// If HATCH_CONFIG is set, it takes precedence.
func GetConfigFile() string {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath
	}
	return DefaultPaths().ConfigFile
}

// GetCacheDir returns the cache directory path.
// If HATCH_CACHE_DIR is set, it takes precedence.
func GetCacheDir() string {
	if envPath := os.Getenv(EnvCacheDir); envPath != "" {
		return envPath
	}
	return DefaultPaths().CacheDir
}

// EnsureCacheDir creates the cache directory if it doesn't exist.
func EnsureCacheDir() (string, error) {
	dir, err := ExpandPath(GetCacheDir())
	if err != nil {
		return "", err
	}
	return dir, os.MkdirAll(dir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
