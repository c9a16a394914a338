package cmd

import (
	"testing"
)

func TestWatchlistRoundTrip(t *testing.T) {
	t.Setenv("FINSIGHT_HOME", t.TempDir())

	// a missing file is an empty watch-list, not an error.
	w, err := LoadWatchlist()
	if err != nil {
		t.Fatalf("LoadWatchlist() unexpected error: %v", err)
	}
	if w.Len() != 0 {
		t.Fatalf("expected an empty watch-list, got %d symbols", w.Len())
	}

	w.Add("AAPL")
	w.Add("MSFT")
	if err := w.SetQuantity("AAPL", 10); err != nil {
		t.Fatal(err)
	}
	if err := SaveWatchlist(w); err != nil {
		t.Fatalf("SaveWatchlist() unexpected error: %v", err)
	}

	got, err := LoadWatchlist()
	if err != nil {
		t.Fatalf("LoadWatchlist() unexpected error: %v", err)
	}
	if got.Len() != 2 || !got.Has("AAPL") || !got.Has("MSFT") {
		t.Errorf("reloaded watch-list lost symbols: %v", got.Symbols())
	}
	if got.Quantity("AAPL") != 10 {
		t.Errorf("reloaded quantity = %d, want 10", got.Quantity("AAPL"))
	}
}
