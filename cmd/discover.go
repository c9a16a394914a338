package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"finsight/renderer"

	"github.com/google/subcommands"
)

type discoverCmd struct {
	n    int
	json bool
}

func (*discoverCmd) Name() string     { return "discover" }
func (*discoverCmd) Synopsis() string { return "let the advisor scan the market for candidates" }
func (*discoverCmd) Usage() string {
	return `fin discover [-n <count>] [-json]

  Asks the advisor to scan the current market for promising stocks and
  analyze them. Symbols already on the watch-list are excluded.

  Analysis is generated by a language model and is not financial advice.
`
}

func (c *discoverCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 3, "number of stocks to discover")
	f.BoolVar(&c.json, "json", false, "print the raw analysis records as JSON")
}

func (c *discoverCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.n <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be positive.")
		return subcommands.ExitUsageError
	}

	w, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	a, err := newAdvisor(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing the advisor: %v\n", err)
		return subcommands.ExitFailure
	}

	records, err := a.Discover(ctx, c.n, w.Symbols())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error asking for discovery: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding records: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.AnalysesMarkdown(records))
	return subcommands.ExitSuccess
}
