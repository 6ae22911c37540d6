package application

import (
	"context"

	"stock-quotes/internal/domain"
)

// QuoteSource fetches the raw quotes payload for a comma-separated ticker
// list. The body is returned whole and unparsed, whatever the status code.
type QuoteSource interface {
	Fetch(ctx context.Context, tickers string) ([]byte, error)
}

// Matcher turns a raw quotes payload into the quotes answering a request.
type Matcher interface {
	Mode() MatchMode
	Match(body []byte, tickers []string) ([]domain.Quote, error)
}
