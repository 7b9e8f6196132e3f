package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/cmdlayer/internal/branding"
	"github.com/agentx-labs/cmdlayer/internal/userdata"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyLogLevel       = "log.level"
	KeySourcesBackend = "sources.backend"
	KeyHome           = "home"
)

// Sources backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Settings is the resolved view of the configuration used by commands.
type Settings struct {
	LogLevel       string
	SourcesBackend string
	// Home overrides the directory that holds .claude/commands. Empty means
	// the OS home directory.
	Home string
}

// Dir returns the path to the config directory, the cmdlayer data
// directory (~/.cmdlayer/ unless CMDLAYER_DATA is set).
func Dir() string {
	dir, err := userdata.GetDataDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return dir
}

// FilePath returns the full path to the config file (~/.cmdlayer/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeySourcesBackend, BackendFile)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Resolve reads the current settings. Call Load first.
func Resolve() (Settings, error) {
	s := Settings{
		LogLevel:       viper.GetString(KeyLogLevel),
		SourcesBackend: strings.ToLower(viper.GetString(KeySourcesBackend)),
		Home:           viper.GetString(KeyHome),
	}
	switch s.SourcesBackend {
	case BackendFile, BackendSQLite:
	default:
		return Settings{}, fmt.Errorf("unknown %s %q (want %s or %s)", KeySourcesBackend, s.SourcesBackend, BackendFile, BackendSQLite)
	}
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
