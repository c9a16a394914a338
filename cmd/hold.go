package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"finsight"

	"github.com/google/subcommands"
)

type holdCmd struct{}

func (*holdCmd) Name() string     { return "hold" }
func (*holdCmd) Synopsis() string { return "record the held quantity of a watched stock" }
func (*holdCmd) Usage() string {
	return `fin hold <symbol> <quantity>

  Records how many shares of a watched symbol you hold. The quantity
  feeds the valuation report. A quantity of 0 forgets the holding.
`
}

func (*holdCmd) SetFlags(_ *flag.FlagSet) {}

func (c *holdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a symbol and a quantity.")
		return subcommands.ExitUsageError
	}

	quantity, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: quantity %q is not a whole number.\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	w, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	symbol := finsight.Normalize(f.Arg(0))
	if err := w.SetQuantity(symbol, quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveWatchlist(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	if quantity == 0 {
		fmt.Printf("✅ Forgot the holding of %s.\n", symbol)
	} else {
		fmt.Printf("✅ Holding %d %s.\n", quantity, symbol)
	}
	return subcommands.ExitSuccess
}
