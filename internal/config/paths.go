// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global paperwatch directory.
	GlobalDirName = ".paperwatch"
)

// File names
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "paperwatch.log"
)

// GlobalDir returns the path to the global paperwatch directory (~/.paperwatch/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalConfigFile returns the path to the config.yaml file.
func GlobalConfigFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// GlobalLogFile returns the default operator log path.
func GlobalLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// EnsureGlobalDir creates the global paperwatch directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
