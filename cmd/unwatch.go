package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"finsight"

	"github.com/google/subcommands"
)

type unwatchCmd struct{}

func (*unwatchCmd) Name() string     { return "unwatch" }
func (*unwatchCmd) Synopsis() string { return "remove stocks from the watch-list" }
func (*unwatchCmd) Usage() string {
	return `fin unwatch <symbol> [<symbol>...]

  Removes one or more stock symbols from the watch-list, along with
  their held quantities.
`
}

func (*unwatchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *unwatchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required.")
		return subcommands.ExitUsageError
	}

	w, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	var removed []string
	for _, arg := range f.Args() {
		symbol := finsight.Normalize(arg)
		if !w.Remove(symbol) {
			fmt.Fprintf(os.Stderr, "Error: %q is not watched.\n", arg)
			return subcommands.ExitFailure
		}
		removed = append(removed, symbol)
	}

	if err := SaveWatchlist(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Stopped watching %s.\n", strings.Join(removed, ", "))
	return subcommands.ExitSuccess
}
