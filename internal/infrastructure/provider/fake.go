package provider

import (
	"context"

	"stock-quotes/internal/application"
)

// Ensure Fake implements application.QuoteSource.
var _ application.QuoteSource = (*Fake)(nil)

// SampleBody is a trimmed FMP quote payload used for offline runs.
const SampleBody = `[
  {"symbol":"AAPL","name":"Apple Inc.","price":201.08,"changesPercentage":0.039801,"change":0.08,"exchange":"NASDAQ"},
  {"symbol":"GOOG","name":"Alphabet Inc.","price":2830.42,"changesPercentage":0.372371,"change":10.5,"exchange":"NASDAQ"},
  {"symbol":"MSFT","name":"Microsoft Corporation","price":495.94,"changesPercentage":-0.241956,"change":-1.2,"exchange":"NASDAQ"}
]`

// Fake returns the same body for every request, ignoring the tickers.
type Fake struct {
	body []byte
}

func NewFake(body string) *Fake { return &Fake{body: []byte(body)} }

func (f *Fake) Fetch(context.Context, string) ([]byte, error) {
	out := make([]byte, len(f.body))
	copy(out, f.body)
	return out, nil
}
