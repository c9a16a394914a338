package advisor

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", `123.45`, 123.45},
		{"quoted number", `"123.45"`, 123.45},
		{"formatted dollars", `"$1,234.50"`, 1234.5},
		{"percent", `"12%"`, 12},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"not a number", `"N/A"`, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var n Number
			if err := json.Unmarshal([]byte(c.in), &n); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", c.in, err)
			}
			if n.Float64() != c.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", c.in, n.Float64(), c.want)
			}
		})
	}
}

func TestRecommendationUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want Recommendation
	}{
		{`"BUY"`, Buy},
		{`"buy"`, Buy},
		{`" Sell "`, Sell},
		{`"hold"`, Hold},
		{`"strong buy"`, Recommendation("STRONG BUY")},
	}
	for _, c := range cases {
		var r Recommendation
		if err := json.Unmarshal([]byte(c.in), &r); err != nil {
			t.Fatalf("Unmarshal(%s) unexpected error: %v", c.in, err)
		}
		if r != c.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", c.in, r, c.want)
		}
	}
}
