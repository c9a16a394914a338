package renderer

import (
	"bytes"
	"fmt"

	"finsight/advisor"

	md "github.com/nao1215/markdown"
)

// AnalysesMarkdown renders the advisor's stock analysis records.
func AnalysesMarkdown(records []advisor.StockAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Analysis")
	if len(records) == 0 {
		doc.PlainText("The advisor returned no analysis.")
		return doc.String()
	}

	for _, r := range records {
		title := r.Symbol
		if r.Name != "" {
			title = fmt.Sprintf("%s (%s)", r.Name, r.Symbol)
		}
		doc.H2(title)

		if r.Recommendation != "" {
			doc.PlainText(md.Bold(fmt.Sprintf("Recommendation: %s", r.Recommendation)))
		}

		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				md.Bold("Current Price"),
				md.Bold(num(r.CurrentPrice)),
			},
			Rows: [][]string{
				{"Market Cap", orDash(r.MarketCap)},
				{"52-Week High", num(r.High52Week)},
				{"52-Week Low", num(r.Low52Week)},
				{"Suggested Buy Price", num(r.SuggestBuyPrice)},
				{"Suggested Sell Price", num(r.SuggestSellPrice)},
				{"Projected Annual Yield", orDash(r.ProjectedAnnualYield)},
			},
		})

		if r.Analysis != "" {
			doc.PlainText(r.Analysis)
		}
		if r.ExampleScenario != "" {
			doc.PlainText(md.Italic(r.ExampleScenario))
		}
	}

	return doc.String()
}

// num formats a figure reported by the model, missing figures render as
// a dash.
func num(n advisor.Number) string {
	if n.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%.2f", n.Float64())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
