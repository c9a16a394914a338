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

type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "add stocks to the watch-list" }
func (*watchCmd) Usage() string {
	return `fin watch <symbol> [<symbol>...]

  Adds one or more stock symbols to the watch-list. Symbols are
  normalized to upper case, and duplicates are rejected.
`
}

func (*watchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required.")
		return subcommands.ExitUsageError
	}

	w, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	var added []string
	for _, arg := range f.Args() {
		symbol := finsight.Normalize(arg)
		if !w.Add(symbol) {
			fmt.Fprintf(os.Stderr, "Error: %q is empty or already watched.\n", arg)
			return subcommands.ExitFailure
		}
		added = append(added, symbol)
	}

	if err := SaveWatchlist(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Now watching %s.\n", strings.Join(added, ", "))
	return subcommands.ExitSuccess
}
