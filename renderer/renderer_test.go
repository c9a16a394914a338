package renderer

import (
	"strings"
	"testing"

	"finsight"
	"finsight/advisor"
)

func contains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q:\n%s", want, output)
		}
	}
}

// row reports whether a table row starts with the first cell and holds
// all the others, whatever padding the table writer added.
func row(output string, cells ...string) bool {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "| "+cells[0]) {
			continue
		}
		ok := true
		for _, cell := range cells[1:] {
			if !strings.Contains(line, cell) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func TestAnalysesMarkdown(t *testing.T) {
	records := []advisor.StockAnalysis{
		{
			Symbol:               "AAPL",
			Name:                 "Apple Inc.",
			MarketCap:            "$3.4T",
			High52Week:           260.1,
			Low52Week:            169.2,
			CurrentPrice:         230.5,
			SuggestBuyPrice:      210,
			SuggestSellPrice:     255,
			Recommendation:       advisor.Hold,
			Analysis:             "Solid cash flows, rich valuation.",
			ProjectedAnnualYield: "8%",
			ExampleScenario:      "Buying 10 shares at 210 would cost 2100.",
		},
		{Symbol: "MSFT"},
	}

	out := AnalysesMarkdown(records)
	contains(t, out,
		"# Stock Analysis",
		"## Apple Inc. (AAPL)",
		"**Recommendation: HOLD**",
		"**Current Price**",
		"**230.50**",
		"52-Week High",
		"260.10",
		"$3.4T",
		"8%",
		"Solid cash flows, rich valuation.",
		"*Buying 10 shares at 210 would cost 2100.*",
		"## MSFT",
	)

	// the record without figures renders dashes, not zeros
	_, msft, ok := strings.Cut(out, "## MSFT")
	if !ok {
		t.Fatalf("no section for MSFT:\n%s", out)
	}
	if strings.Contains(msft, "0.00") {
		t.Errorf("missing figures must render as dashes:\n%s", msft)
	}
	if !row(msft, "Market Cap", " - ") {
		t.Errorf("missing market cap must render as a dash:\n%s", msft)
	}
}

func TestAnalysesMarkdownEmpty(t *testing.T) {
	contains(t, AnalysesMarkdown(nil), "# Stock Analysis", "no analysis")
}

func TestValuationMarkdown(t *testing.T) {
	w := finsight.NewWatchlist()
	w.Add("AAPL")
	w.Add("MSFT")
	w.Add("GOOG")
	if err := w.SetQuantity("AAPL", 10); err != nil {
		t.Fatal(err)
	}
	if err := w.SetQuantity("MSFT", 2); err != nil {
		t.Fatal(err)
	}

	v := w.Value(map[string]finsight.Money{
		"AAPL": finsight.M(230.5, "USD"),
	})
	out := ValuationMarkdown(v)
	contains(t, out, "# Valuation", "Ticker", "Quantity", "Price", "Value")
	if !row(out, "AAPL", "10", "$230.50", "$2,305.00") {
		t.Errorf("no valued row for AAPL:\n%s", out)
	}
	// MSFT has no quote, its row shows dashes
	if !row(out, "MSFT", "2", "- ") {
		t.Errorf("unpriced position must render dashes:\n%s", out)
	}
	if !row(out, "**Total**", "**$2,305.00**") {
		t.Errorf("no total row:\n%s", out)
	}
	// GOOG is watched but not held
	if strings.Contains(out, "GOOG") {
		t.Errorf("unheld symbols must not appear:\n%s", out)
	}
}

func TestValuationMarkdownEmpty(t *testing.T) {
	v := finsight.NewWatchlist().Value(nil)
	contains(t, ValuationMarkdown(v), "# Valuation", "No held positions")
}

func TestWatchlistMarkdown(t *testing.T) {
	w := finsight.NewWatchlist()
	w.Add("AAPL")
	w.Add("MSFT")
	if err := w.SetQuantity("AAPL", 10); err != nil {
		t.Fatal(err)
	}

	out := WatchlistMarkdown(w)
	contains(t, out, "# Watch-list")
	if !row(out, "AAPL", "10") {
		t.Errorf("no row for AAPL:\n%s", out)
	}
	if !row(out, "MSFT", "- ") {
		t.Errorf("a symbol without quantity must render a dash:\n%s", out)
	}
}

func TestWatchlistMarkdownEmpty(t *testing.T) {
	contains(t, WatchlistMarkdown(finsight.NewWatchlist()), "empty")
}

func TestRetirementMarkdown(t *testing.T) {
	plan := finsight.RetirementPlan{
		CurrentAge:           30,
		RetirementAge:        60,
		CurrentSavings:       100000,
		MonthlySavings:       1000,
		AnnualReturnPct:      6,
		TargetMonthlyPension: 20000,
	}
	result, err := finsight.Project(plan)
	if err != nil {
		t.Fatal(err)
	}

	out := RetirementMarkdown(plan, result)
	contains(t, out,
		"# Retirement Projection",
		"**Current Age**",
		"**30**",
		"Retirement Age",
		"6.00%",
		"## Projection",
		"Monthly Pension (4% rule)",
		"20000.00",
		"The target pension is not within reach.",
		"## Savings by Age",
	)
	if !row(out, "30", "100000.00") {
		t.Errorf("breakdown must start at age 30 with the current savings:\n%s", out)
	}
	if !row(out, "60") {
		t.Errorf("breakdown must end at the retirement age:\n%s", out)
	}
}

func TestRetirementMarkdownReachable(t *testing.T) {
	plan := finsight.RetirementPlan{
		CurrentAge:     50,
		RetirementAge:  50,
		CurrentSavings: 5_000_000,
	}
	result, err := finsight.Project(plan)
	if err != nil {
		t.Fatal(err)
	}

	out := RetirementMarkdown(plan, result)
	contains(t, out, "The target pension is within reach.")
	// a one-entry breakdown carries no information worth a table
	if strings.Contains(out, "Savings by Age") {
		t.Errorf("single-year breakdown must not render:\n%s", out)
	}
}
