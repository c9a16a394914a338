package finsight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains code to persist the watch-list in a single JSON
// file, in a way that is still human-readable and git-friendly.
//
// The overall strategy is a single object with the ordered symbol list
// first and the held quantities next, so a diff on the file reads like
// a diff on the watch-list itself.

// jwatchlist is the object read from and written to the file using the json parser.
type jwatchlist struct {
	Symbols    []string       `json:"symbols"`
	Quantities map[string]int `json:"quantities"`
	//more to come when the watch-list definition grows.
}

// DecodeWatchlist reads a watch-list from a JSON stream.
//
// Symbols are normalized while reading, so a hand-edited file with
// lower-case symbols loads fine. Duplicated symbols, negative
// quantities, and quantities for unwatched symbols are format errors.
func DecodeWatchlist(r io.Reader) (*Watchlist, error) {
	var jw jwatchlist
	if err := json.NewDecoder(r).Decode(&jw); err != nil {
		return nil, fmt.Errorf("format error in watch-list: %w", err)
	}

	w := NewWatchlist()
	for _, symbol := range jw.Symbols {
		if !w.Add(symbol) {
			return nil, fmt.Errorf("format error in watch-list: symbol %q is empty or already defined", symbol)
		}
	}
	for symbol, quantity := range jw.Quantities {
		if err := w.SetQuantity(symbol, quantity); err != nil {
			return nil, fmt.Errorf("format error in watch-list: %w", err)
		}
	}
	return w, nil
}

// EncodeWatchlist writes the watch-list as a single indented JSON
// object, symbols first, quantities next.
func EncodeWatchlist(wr io.Writer, w *Watchlist) error {
	symbols := w.symbols
	if symbols == nil {
		symbols = []string{}
	}

	var jw jsonObjectWriter
	jw.Append("symbols", symbols)
	if len(w.quantities) > 0 {
		// json marshals map keys in sorted order, so the output is stable.
		jw.Append("quantities", w.quantities)
	}
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal watch-list: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("cannot marshal watch-list: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := wr.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("cannot write watch-list: %w", err)
	}
	return nil
}
