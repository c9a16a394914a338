package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"finsight"
	"finsight/advisor"
	"finsight/renderer"

	"github.com/google/subcommands"
)

type analyzeCmd struct {
	json bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "ask the advisor for a grounded analysis of stocks" }
func (*analyzeCmd) Usage() string {
	return `fin analyze [-json] [<symbol>...]

  Asks the advisor for a structured analysis of the given symbols, or of
  the whole watch-list when none are given. When the watch-list records
  held quantities, a valuation at the analyzed prices is appended.

  Analysis is generated by a language model and is not financial advice.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the raw analysis records as JSON")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watch-list: %v\n", err)
		return subcommands.ExitFailure
	}

	symbols := w.Symbols()
	if f.NArg() > 0 {
		symbols = symbols[:0]
		for _, arg := range f.Args() {
			symbols = append(symbols, finsight.Normalize(arg))
		}
	}
	if len(symbols) == 0 {
		fmt.Fprintln(os.Stderr, "Error: the watch-list is empty, name the symbols to analyze.")
		return subcommands.ExitUsageError
	}

	a, err := newAdvisor(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing the advisor: %v\n", err)
		return subcommands.ExitFailure
	}

	records, err := a.Analyze(ctx, symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error asking for analysis: %v\n", err)
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

	out := renderer.AnalysesMarkdown(records)

	// value the holdings at the analyzed prices
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if v := w.Value(advisor.Prices(records, cfg.Currency)); len(v.Positions) > 0 {
		out += "\n" + renderer.ValuationMarkdown(v)
	}

	printMarkdown(out)
	return subcommands.ExitSuccess
}
