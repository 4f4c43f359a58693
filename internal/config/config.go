// Package config loads and persists the TOML application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mwrobel/kcal/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "kcal"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"

	// BackendFile persists entries as a single JSON document on disk
	BackendFile = "file"
	// BackendSQLite persists entries in an embedded SQLite database
	BackendSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	// Theme selects the TUI color theme (a bubbletint theme name)
	Theme string `toml:"theme"`
	// StorageBackend selects where entries are persisted (file or sqlite)
	StorageBackend string `toml:"storage_backend"`
	// StoragePath overrides the default storage location when non-empty
	StoragePath string `toml:"storage_path"`
}

// DefaultConfig returns a Config with sensible defaults:
// - theme: "dracula"
// - storage_backend: "file" (single JSON document)
// - storage_path: "" (use the platform data directory)
func DefaultConfig() Config {
	return Config{
		Theme:          "dracula",
		StorageBackend: BackendFile,
		StoragePath:    "",
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendSQLite:
		return nil
	}
	return fmt.Errorf("invalid storage_backend %q (valid: %s, %s)",
		c.StorageBackend, BackendFile, BackendSQLite)
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at the given path, filling absent
// fields with defaults. A missing file yields the defaults without
// error; an unreadable or malformed file is an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Theme == "" {
		cfg.Theme = DefaultConfig().Theme
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = DefaultConfig().StorageBackend
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Save writes the config as TOML to the given path.
func Save(path string, cfg Config) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return toml.NewEncoder(file).Encode(cfg)
}
