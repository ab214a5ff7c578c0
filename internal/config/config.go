package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyHistoryEnabled = "history.enabled"
	KeyHistoryPath    = "history.path"
	KeyLogPath        = "log.path"
	KeyLogDebug       = "log.debug"
)

type Config struct {
	HistoryEnabled bool
	HistoryPath    string
	LogPath        string
	Debug          bool
}

// Dir returns the directory holding the config file, the history database
// and the logs.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "charswap"), nil
}

// New returns a viper instance with defaults, environment binding and the
// config file location set. Flags are bound by the caller.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v.SetDefault(KeyHistoryEnabled, true)
	v.SetDefault(KeyHistoryPath, filepath.Join(dir, "charswap.db"))
	v.SetDefault(KeyLogPath, filepath.Join(dir, "logs", "charswap.log"))
	v.SetDefault(KeyLogDebug, false)

	v.SetEnvPrefix("charswap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(dir)
	}

	return v, nil
}

// Load reads the config file, if any, and resolves every key. A missing
// config file in the default location is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	cfg := &Config{
		HistoryEnabled: v.GetBool(KeyHistoryEnabled),
		HistoryPath:    v.GetString(KeyHistoryPath),
		LogPath:        v.GetString(KeyLogPath),
		Debug:          v.GetBool(KeyLogDebug),
	}

	if cfg.HistoryEnabled && cfg.HistoryPath == "" {
		return nil, errors.New("history.path must be set when history is enabled")
	}

	return cfg, nil
}
