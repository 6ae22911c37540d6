package application

import (
	"context"
	"errors"
)

var (
	ErrSource = errors.New("source error")
)

type fakeQuoteSource struct {
	body []byte
	err  error

	calls      int
	gotTickers string
}

func (f *fakeQuoteSource) Fetch(_ context.Context, tickers string) ([]byte, error) {
	f.calls++
	f.gotTickers = tickers
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}
