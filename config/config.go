// Package config resolves where finsight keeps its files and how it
// talks to the advisor model.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config carries the settings the application reads from the environment.
type Config struct {
	// Home is the directory holding the watch-list and keyring files.
	Home string `env:"FINSIGHT_HOME"`
	// APIKey is the Gemini API key. When empty the key is looked up in
	// the keyring, and the genai client falls back to its own env lookup.
	APIKey string `env:"GEMINI_API_KEY"`
	// Model is the Gemini model the advisor talks to.
	Model string `env:"FINSIGHT_MODEL" envDefault:"gemini-2.5-pro"`
	// Currency is the reporting currency for valuations.
	Currency string `env:"FINSIGHT_CURRENCY" envDefault:"USD"`
}

// Load reads the configuration from the environment. When FINSIGHT_HOME
// is not set the files live under ~/.finsight.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse environment: %w", err)
	}
	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("could not resolve the home directory: %w", err)
		}
		cfg.Home = filepath.Join(home, ".finsight")
	}
	return cfg, nil
}

// WatchlistFile returns the path of the watch-list file.
func (c Config) WatchlistFile() string { return filepath.Join(c.Home, "watchlist.json") }

// KeyringFile returns the path of the encrypted keyring file.
func (c Config) KeyringFile() string { return filepath.Join(c.Home, "keyring.json") }
