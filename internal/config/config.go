// Package config loads optional user settings from a config file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds user settings. Zero values mean "use the built-in default":
// an empty DeckPath selects the embedded deck, an empty DBPath the standard
// data directory.
type Config struct {
	DeckPath string `mapstructure:"deck"` // path to a deck JSON file
	DBPath   string `mapstructure:"db"`   // path to the SQLite database
}

// Load reads settings from $XDG_CONFIG_HOME/quizdeck/config.yaml (falling
// back to ~/.config) and from the QUIZDECK_DECK and QUIZDECK_DB environment
// variables, environment winning. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)

	v.SetDefault("deck", "")
	v.SetDefault("db", "")

	_ = v.BindEnv("deck", "QUIZDECK_DECK")
	_ = v.BindEnv("db", "QUIZDECK_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Environment overrides beat file values even when the file sets a key.
	if p := v.GetString("deck"); p != "" {
		cfg.DeckPath = p
	}
	if p := v.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return &cfg, nil
}

func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quizdeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "quizdeck"), nil
}
