// Package cmd implements the CLI application to manage the watch-list,
// the retirement projection, and the conversation with the advisor.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"finsight"
	"finsight/advisor"
	"finsight/config"
	"finsight/keyring"

	"github.com/google/subcommands"
)

// Commands are all the subcommands, in display order. A main package
// registers them and executes the user-selected one.
var Commands = []subcommands.Command{
	&watchCmd{},
	&unwatchCmd{},
	&holdCmd{},
	&listCmd{},
	&analyzeCmd{},
	&discoverCmd{},
	&retireCmd{},
	&keyCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var home = flag.String("home", "", "Path to the finsight home directory (defaults to FINSIGHT_HOME or ~/.finsight)")
var passphraseFlag = flag.String("p", "", "Passphrase protecting the keyring.\n If missing it will read the environment variable \""+passphraseEnv+"\".")

const passphraseEnv = "FINSIGHT_PASSPHRASE"

// passphrase returns the keyring passphrase from the -p flag or the environment.
func passphrase() string {
	if *passphraseFlag == "" {
		*passphraseFlag = os.Getenv(passphraseEnv)
	}
	return *passphraseFlag
}

// loadConfig resolves the configuration from the environment and the
// top-level flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if *home != "" {
		cfg.Home = *home
	}
	return cfg, nil
}

// LoadWatchlist reads the watch-list from the app home directory.
func LoadWatchlist() (*finsight.Watchlist, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	filename := cfg.WatchlistFile()
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		// a missing file is just an empty watch-list
		return finsight.NewWatchlist(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open watch-list %q: %w", filename, err)
	}
	defer f.Close()

	w, err := finsight.DecodeWatchlist(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode watch-list %q: %w", filename, err)
	}
	return w, nil
}

// SaveWatchlist writes the watch-list into the app home directory.
func SaveWatchlist(w *finsight.Watchlist) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	filename := cfg.WatchlistFile()
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("could not create directory for watch-list %q: %w", filename, err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open watch-list %q for writing: %w", filename, err)
	}
	defer f.Close()
	return finsight.EncodeWatchlist(f, w)
}

// newAdvisor connects to the advisor model, resolving the API key from
// the environment first, and the keyring second.
func newAdvisor(ctx context.Context) (*advisor.Advisor, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	key := cfg.APIKey
	if key == "" {
		if _, err := os.Stat(cfg.KeyringFile()); err == nil {
			pass := passphrase()
			if pass == "" {
				return nil, fmt.Errorf("the keyring is locked, pass the passphrase with -p")
			}
			key, err = keyring.Load(cfg.KeyringFile(), pass)
			if err != nil {
				return nil, err
			}
		}
	}
	// with no key at all, let the genai client run its own environment lookup.
	return advisor.New(ctx, cfg.Model, key)
}
