package advisor

import (
	"encoding/json"
	"strings"

	"finsight"

	"github.com/PaesslerAG/jsonpath"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This file implements the tolerant decoding of model replies.
//
// The reply is asked to be a bare JSON array of records, but in
// practice it comes in many shapes: wrapped in a fenced code block,
// surrounded by prose, nested in an envelope object, or as a single
// record. Decode tries each candidate text with a list of strategies
// from the most exact to the most desperate, and settles for an empty
// list when nothing is usable.

// Decode extracts the stock analysis records of a model reply.
//
// It never fails: a reply with nothing usable decodes to an empty
// list, and records without a symbol are dropped.
func Decode(response string) []StockAnalysis {
	candidates := fencedBlocks(response)
	candidates = append(candidates, response)

	for _, candidate := range candidates {
		if records := tryDecode(candidate); len(records) > 0 {
			return records
		}
	}
	return nil
}

// tryDecode attempts the decoding strategies on a single candidate text.
func tryDecode(s string) []StockAnalysis {
	// The exact case: the text is the array (or a single record).
	if records := decodeRecords(s); len(records) > 0 {
		return records
	}
	// Prose around the array: cut from the first '[' to the last ']'.
	if start, end := strings.Index(s, "["), strings.LastIndex(s, "]"); start >= 0 && end > start {
		if records := decodeRecords(s[start : end+1]); len(records) > 0 {
			return records
		}
	}
	// The array is nested in an envelope object.
	return unwrap(s)
}

// decodeRecords parses s as a JSON array of records, or failing that as
// a single record object.
func decodeRecords(s string) []StockAnalysis {
	var records []StockAnalysis
	if err := json.Unmarshal([]byte(s), &records); err != nil {
		var single StockAnalysis
		if err := json.Unmarshal([]byte(s), &single); err != nil {
			return nil
		}
		records = []StockAnalysis{single}
	}
	return usable(records)
}

// usable normalizes record symbols and drops records without one.
func usable(records []StockAnalysis) []StockAnalysis {
	var kept []StockAnalysis
	for _, r := range records {
		r.Symbol = finsight.Normalize(r.Symbol)
		if r.Symbol == "" {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// envelopePaths lists the attribute names models like to wrap the array in.
var envelopePaths = []string{
	"$.stocks",
	"$.data",
	"$.results",
	"$.items",
	"$.analyses",
	"$.recommendations",
}

// unwrap probes the first JSON object found in s for an attribute
// holding the records array.
func unwrap(s string) []StockAnalysis {
	start, end := strings.Index(s, "{"), strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil
	}
	var jobj any
	if err := json.Unmarshal([]byte(s[start:end+1]), &jobj); err != nil {
		return nil
	}

	for _, path := range envelopePaths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// round-trip through json to decode whatever was found there
		data, err := json.Marshal(jval)
		if err != nil {
			continue
		}
		if records := decodeRecords(string(data)); len(records) > 0 {
			return records
		}
	}
	return nil
}

// fencedBlocks returns the content of every fenced code block of the reply.
func fencedBlocks(response string) []string {
	content := []byte(response)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fcb, ok := n.(*ast.FencedCodeBlock); ok {
			var b strings.Builder
			for i := 0; i < fcb.Lines().Len(); i++ {
				line := fcb.Lines().At(i)
				b.Write(line.Value(content))
			}
			blocks = append(blocks, b.String())
		}
		return ast.WalkContinue, nil
	})
	return blocks
}
