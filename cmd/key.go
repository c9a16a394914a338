package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"finsight/keyring"

	"github.com/google/subcommands"
)

type keyCmd struct {
	set   bool
	check bool
	file  string
}

func (*keyCmd) Name() string     { return "key" }
func (*keyCmd) Synopsis() string { return "store the advisor API key encrypted in the keyring" }
func (*keyCmd) Usage() string {
	return `fin -p <passphrase> key -set [-file <path>]
fin -p <passphrase> key -check

  -set seals the Gemini API key with the passphrase and stores it in the
  keyring. The key is read from <path> with -file, from standard input
  otherwise, so it stays out of the shell history.

  -check verifies that the keyring opens with the passphrase.
`
}

func (c *keyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.set, "set", false, "store a new API key in the keyring")
	f.BoolVar(&c.check, "check", false, "verify that the keyring opens with the passphrase")
	f.StringVar(&c.file, "file", "", "read the API key from this file instead of standard input")
}

func (c *keyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set == c.check {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -set or -check is required.")
		return subcommands.ExitUsageError
	}

	pass := passphrase()
	if pass == "" {
		fmt.Fprintln(os.Stderr, "Error: a passphrase is required, pass it with -p.")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.check {
		if _, err := keyring.Load(cfg.KeyringFile(), pass); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("✅ The keyring opens with this passphrase.")
		return subcommands.ExitSuccess
	}

	key, err := c.readKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading the API key: %v\n", err)
		return subcommands.ExitFailure
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "Error: the API key is empty.")
		return subcommands.ExitFailure
	}

	if err := keyring.Save(cfg.KeyringFile(), pass, key); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving the keyring: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ API key stored in %s.\n", cfg.KeyringFile())
	return subcommands.ExitSuccess
}

func (c *keyCmd) readKey() (string, error) {
	if c.file != "" {
		data, err := os.ReadFile(c.file)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
