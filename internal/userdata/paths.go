package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/cmdlayer/internal/branding"
)

// File names inside the data directory.
const (
	SourcesFile = "sources.yaml"
	SourcesDB   = "sources.db"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetHomeDir returns override when set, otherwise the OS home directory.
// The result is the directory whose .claude/commands holds user commands.
func GetHomeDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// GetDataDir returns the cmdlayer data directory.
// It checks the CMDLAYER_DATA environment variable first,
// then falls back to ~/.cmdlayer.
func GetDataDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("DATA")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetSourcesFile returns the path to the YAML plugin source store.
// CMDLAYER_SOURCES overrides the default <data>/sources.yaml.
func GetSourcesFile() (string, error) {
	if v := os.Getenv(branding.EnvVar("SOURCES")); v != "" {
		return v, nil
	}
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SourcesFile), nil
}

// GetSourcesDB returns the path to the SQLite plugin source store.
// CMDLAYER_SOURCES_DB overrides the default <data>/sources.db.
func GetSourcesDB() (string, error) {
	if v := os.Getenv(branding.EnvVar("SOURCES_DB")); v != "" {
		return v, nil
	}
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SourcesDB), nil
}
