package renderer

import (
	"bytes"

	"finsight"

	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders the market value of the held positions.
func ValuationMarkdown(v *finsight.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Valuation")
	if len(v.Positions) == 0 {
		doc.PlainText("No held positions in the watch-list.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Quantity", "Price", "Value"},
		Rows:   [][]string{},
	}
	for _, p := range v.Positions {
		price, value := p.Price.String(), p.Value.String()
		if p.Price.IsZero() {
			// no quote for that ticker, keep the gap visible
			price, value = "-", "-"
		}
		table.Rows = append(table.Rows, []string{
			p.Symbol,
			p.Quantity.String(),
			price,
			value,
		})
	}
	total := "-"
	if !v.Total.IsZero() {
		total = v.Total.String()
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", "", md.Bold(total)})
	doc.Table(table)

	return doc.String()
}
