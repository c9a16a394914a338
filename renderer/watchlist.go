package renderer

import (
	"bytes"
	"strconv"

	"finsight"

	md "github.com/nao1215/markdown"
)

// WatchlistMarkdown renders the watched symbols and their held quantities.
func WatchlistMarkdown(w *finsight.Watchlist) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Watch-list")
	if w.Len() == 0 {
		doc.PlainText("The watch-list is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Held"},
		Rows:   [][]string{},
	}
	for _, symbol := range w.Symbols() {
		held := "-"
		if q := w.Quantity(symbol); q > 0 {
			held = strconv.Itoa(q)
		}
		table.Rows = append(table.Rows, []string{symbol, held})
	}
	doc.Table(table)

	return doc.String()
}
