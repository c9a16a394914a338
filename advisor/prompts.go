package advisor

import (
	"fmt"
	"strings"

	"finsight"
)

// analysisInstruction frames every request that must come back as records.
const analysisInstruction = `You are a seasoned financial analyst.
When asked about stocks you answer with a single JSON array of records, one per stock, and nothing else.
Each record carries the fields:
symbol, name, marketCap, high52Week, low52Week, currentPrice, suggestBuyPrice, suggestSellPrice,
recommendation (one of BUY, SELL, HOLD), analysis, projectedAnnualYield, exampleScenario.
Prices are plain numbers in the stock's trading currency. The analysis field is a short narrative
rationale. The exampleScenario field is a one-sentence illustration of investing at the suggested
buy price. Do not wrap the array in markdown fences nor in another object.`

// adviceInstruction frames the retirement commentary request.
const adviceInstruction = `You are a prudent retirement planning advisor.
You answer in short plain markdown: a few paragraphs and at most one list.
You never promise returns, you comment on the numbers you are given.`

func analyzePrompt(symbols []string) string {
	return fmt.Sprintf("Analyze the following stocks: %s. Use search to ground current prices and 52-week ranges in fresh data.",
		strings.Join(symbols, ", "))
}

func discoverPrompt(n int, watched []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scan the current market for %d promising stocks and analyze them.", n)
	if len(watched) > 0 {
		fmt.Fprintf(&b, " Exclude these symbols I already watch: %s.", strings.Join(watched, ", "))
	}
	return b.String()
}

func retirementPrompt(plan finsight.RetirementPlan, result *finsight.RetirementResult) string {
	goal := "the target is reachable"
	if !result.GoalReachable {
		goal = "the target is not reachable"
	}
	return fmt.Sprintf(`My retirement projection:
- current age %d, retiring at %d
- current savings %.2f, saving %.2f more per month
- expected annual return %.1f%%
- projected value at retirement: %.2f
- sustainable monthly pension under the 4%% rule: %.2f
- target monthly pension: %.2f, so %s

Comment on this plan and suggest concrete improvements.`,
		plan.CurrentAge, plan.RetirementAge,
		plan.CurrentSavings, plan.MonthlySavings,
		plan.AnnualReturnPct,
		result.TotalAccumulated,
		result.MonthlyPensionPossible,
		plan.TargetMonthlyPension, goal)
}
