package finsight

import (
	"fmt"
	"strings"
)

// Watchlist is the user-curated ordered list of stock symbols under
// watch, together with the quantity held for each.
//
// Symbols are normalized to upper case and kept unique, in the order
// they were first added. Quantities are whole shares; a symbol with no
// recorded quantity is watched but not held.
type Watchlist struct {
	symbols    []string
	quantities map[string]int
}

// NewWatchlist returns a new empty watch-list.
func NewWatchlist() *Watchlist {
	return &Watchlist{quantities: make(map[string]int)}
}

// Normalize returns the canonical form of a symbol: trimmed and upper case.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Add appends a symbol at the end of the watch-list and reports whether
// it was actually added. Adding an empty or already watched symbol is a
// no-op.
func (w *Watchlist) Add(symbol string) bool {
	symbol = Normalize(symbol)
	if symbol == "" || w.Has(symbol) {
		return false
	}
	w.symbols = append(w.symbols, symbol)
	return true
}

// Remove deletes a symbol and its held quantity from the watch-list and
// reports whether it was present.
func (w *Watchlist) Remove(symbol string) bool {
	symbol = Normalize(symbol)
	for i, s := range w.symbols {
		if s == symbol {
			w.symbols = append(w.symbols[:i], w.symbols[i+1:]...)
			delete(w.quantities, symbol)
			return true
		}
	}
	return false
}

// Has reports whether the symbol is watched.
func (w *Watchlist) Has(symbol string) bool {
	symbol = Normalize(symbol)
	for _, s := range w.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// Len returns the number of watched symbols.
func (w *Watchlist) Len() int { return len(w.symbols) }

// Symbols returns the watched symbols in watch order. The returned
// slice is a copy, callers can freely reorder it.
func (w *Watchlist) Symbols() []string {
	return append([]string(nil), w.symbols...)
}

// SetQuantity records the number of shares held for a watched symbol.
// Setting zero clears the holding. Unknown symbols and negative
// quantities are errors.
func (w *Watchlist) SetQuantity(symbol string, quantity int) error {
	symbol = Normalize(symbol)
	if !w.Has(symbol) {
		return fmt.Errorf("symbol %q is not in the watch-list", symbol)
	}
	if quantity < 0 {
		return fmt.Errorf("quantity %d for %q is negative", quantity, symbol)
	}
	if quantity == 0 {
		delete(w.quantities, symbol)
		return nil
	}
	if w.quantities == nil {
		w.quantities = make(map[string]int)
	}
	w.quantities[symbol] = quantity
	return nil
}

// Quantity returns the number of shares held for a symbol, zero when none.
func (w *Watchlist) Quantity(symbol string) int {
	return w.quantities[Normalize(symbol)]
}
