package finsight

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeWatchlist(t *testing.T) {
	w := NewWatchlist()
	w.Add("AAPL")
	w.Add("MSFT")
	if err := w.SetQuantity("AAPL", 10); err != nil {
		t.Fatalf("SetQuantity() unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeWatchlist(&buf, w); err != nil {
		t.Fatalf("EncodeWatchlist() unexpected error: %v", err)
	}

	want := `{
  "symbols": [
    "AAPL",
    "MSFT"
  ],
  "quantities": {
    "AAPL": 10
  }
}
`
	if buf.String() != want {
		t.Errorf("EncodeWatchlist() = %q, want %q", buf.String(), want)
	}
}

func TestEncodeWatchlistEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeWatchlist(&buf, NewWatchlist()); err != nil {
		t.Fatalf("EncodeWatchlist() unexpected error: %v", err)
	}
	want := "{\n  \"symbols\": []\n}\n"
	if buf.String() != want {
		t.Errorf("EncodeWatchlist() = %q, want %q", buf.String(), want)
	}
}

func TestWatchlistRoundTrip(t *testing.T) {
	w := NewWatchlist()
	for _, s := range []string{"AAPL", "MSFT", "GOOG", "NVDA"} {
		w.Add(s)
	}
	w.SetQuantity("MSFT", 3)
	w.SetQuantity("NVDA", 42)

	var buf bytes.Buffer
	if err := EncodeWatchlist(&buf, w); err != nil {
		t.Fatalf("EncodeWatchlist() unexpected error: %v", err)
	}
	got, err := DecodeWatchlist(&buf)
	if err != nil {
		t.Fatalf("DecodeWatchlist() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(got.Symbols(), w.Symbols()) {
		t.Errorf("Symbols() = %v, want %v", got.Symbols(), w.Symbols())
	}
	for _, s := range w.Symbols() {
		if got.Quantity(s) != w.Quantity(s) {
			t.Errorf("Quantity(%s) = %d, want %d", s, got.Quantity(s), w.Quantity(s))
		}
	}
}

func TestDecodeWatchlist(t *testing.T) {
	t.Run("normalizes symbols", func(t *testing.T) {
		in := `{"symbols": ["aapl", " msft "], "quantities": {"aapl": 2}}`
		w, err := DecodeWatchlist(strings.NewReader(in))
		if err != nil {
			t.Fatalf("DecodeWatchlist() unexpected error: %v", err)
		}
		if got, want := w.Symbols(), []string{"AAPL", "MSFT"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Symbols() = %v, want %v", got, want)
		}
		if q := w.Quantity("AAPL"); q != 2 {
			t.Errorf("Quantity(AAPL) = %d, want 2", q)
		}
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		in := `{"symbols": ["AAPL", "aapl"]}`
		if _, err := DecodeWatchlist(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeWatchlist() succeeded on a duplicated symbol, want error")
		}
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		in := `{"symbols": ["AAPL"], "quantities": {"AAPL": -1}}`
		if _, err := DecodeWatchlist(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeWatchlist() succeeded on a negative quantity, want error")
		}
	})

	t.Run("rejects quantity for unwatched symbol", func(t *testing.T) {
		in := `{"symbols": ["AAPL"], "quantities": {"GOOG": 1}}`
		if _, err := DecodeWatchlist(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeWatchlist() succeeded on an unwatched quantity, want error")
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		if _, err := DecodeWatchlist(strings.NewReader("{not json")); err == nil {
			t.Errorf("DecodeWatchlist() succeeded on malformed input, want error")
		}
	})
}
