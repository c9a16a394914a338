package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finsight/renderer"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the watch-list" }
func (*listCmd) Usage() string {
	return `fin list

  Displays the watched symbols and their held quantities. For a
  valuation at current prices, run 'fin analyze'.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: no arguments expected.")
		return subcommands.ExitUsageError
	}

	w, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WatchlistMarkdown(w))
	return subcommands.ExitSuccess
}
