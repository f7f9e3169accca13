// Package config provides configuration loading, hot reload, and schema
// generation for tabdrag.
package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "tabdrag"
	databaseName = "tabdrag.sqlite"

	dirPerm  = 0o750
	filePerm = 0o600
)

// GetConfigDir returns $XDG_CONFIG_HOME/tabdrag (default ~/.config/tabdrag).
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetDataDir returns $XDG_DATA_HOME/tabdrag (default ~/.local/share/tabdrag).
func GetDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}

// DefaultDatabasePath returns the default history database location.
func DefaultDatabasePath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// EnsureDirectories creates the config and data directories if missing.
func EnsureDirectories() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return err
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dataDir, dirPerm)
}
