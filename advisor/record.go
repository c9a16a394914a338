// Package advisor asks a Gemini model for market analysis of stock
// symbols and for commentary on a retirement projection.
//
// Models are unreliable JSON emitters: replies come wrapped in fenced
// code blocks, surrounded by prose, or nested in envelope objects, and
// numeric fields are quoted more often than not. This package carries
// the tolerant decoding needed to turn such replies into usable
// records, and degrades to an empty result instead of failing when a
// reachable model keeps answering off-format.
package advisor

import (
	"strconv"
	"strings"

	"finsight"
)

// Recommendation is the advisor's stance on a stock.
type Recommendation string

const (
	Buy  Recommendation = "BUY"
	Sell Recommendation = "SELL"
	Hold Recommendation = "HOLD"
)

// UnmarshalJSON normalizes the model's casing and spacing. Unknown
// stances are kept as-is (upper-cased) so they stay visible in reports.
func (r *Recommendation) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*r = Recommendation(strings.ToUpper(strings.TrimSpace(s)))
	return nil
}

// Number is a numeric field of an analysis record.
//
// Models quote numbers ("123.45"), format them ("$1,234.50") or leave
// them empty; Number accepts all those forms. A value that cannot be
// read at all decodes to zero rather than failing the whole record.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		s = strings.TrimSpace(s)
		s = strings.Trim(s, "$€£%")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
	}
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// the model wrote something like "N/A", keep the record anyway
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

func (n Number) Float64() float64 { return float64(n) }
func (n Number) IsZero() bool     { return n == 0 }

// StockAnalysis is one stock record returned by the advisor.
//
// The json tags are the wire names the model is instructed to use, do
// not rename them without updating the prompts.
type StockAnalysis struct {
	Symbol               string         `json:"symbol"`
	Name                 string         `json:"name,omitempty"`
	MarketCap            string         `json:"marketCap,omitempty"`
	High52Week           Number         `json:"high52Week,omitempty"`
	Low52Week            Number         `json:"low52Week,omitempty"`
	CurrentPrice         Number         `json:"currentPrice,omitempty"`
	SuggestBuyPrice      Number         `json:"suggestBuyPrice,omitempty"`
	SuggestSellPrice     Number         `json:"suggestSellPrice,omitempty"`
	Recommendation       Recommendation `json:"recommendation,omitempty"`
	Analysis             string         `json:"analysis,omitempty"`
	ProjectedAnnualYield string         `json:"projectedAnnualYield,omitempty"`
	ExampleScenario      string         `json:"exampleScenario,omitempty"`
}

// Prices collects the current prices the records report, in the given
// currency, keyed by symbol. Records without a price are left out.
func Prices(records []StockAnalysis, currency string) map[string]finsight.Money {
	prices := make(map[string]finsight.Money, len(records))
	for _, r := range records {
		if !r.CurrentPrice.IsZero() {
			prices[r.Symbol] = finsight.M(r.CurrentPrice.Float64(), currency)
		}
	}
	return prices
}
