package finsight

// Position is the valued holding of a single watched symbol.
type Position struct {
	Symbol   string
	Quantity Quantity
	Price    Money
	Value    Money
}

// Valuation is the market value of the held symbols of a watch-list,
// in a single reporting currency.
type Valuation struct {
	Positions []Position
	Total     Money
}

// Value computes the valuation of the held symbols at the given prices.
// Positions follow the watch-list order; watched symbols with no held
// quantity are skipped. A held symbol with no known price contributes a
// zero value, so the gap stays visible in reports.
func (w *Watchlist) Value(prices map[string]Money) *Valuation {
	v := &Valuation{}
	for _, symbol := range w.symbols {
		quantity := w.quantities[symbol]
		if quantity == 0 {
			continue
		}
		q := Q(quantity)
		price := prices[symbol]
		value := price.Mul(q)
		v.Positions = append(v.Positions, Position{
			Symbol:   symbol,
			Quantity: q,
			Price:    price,
			Value:    value,
		})
		v.Total = v.Total.Add(value)
	}
	return v
}
