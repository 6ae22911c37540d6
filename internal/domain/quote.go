package domain

// Quote is one ticker's market data as returned by the quotes provider.
type Quote struct {
	Symbol string
	Price  float64
	Change *float64
}

// HasChange reports whether the provider sent a price change for the quote.
func (q Quote) HasChange() bool { return q.Change != nil }
