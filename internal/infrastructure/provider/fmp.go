package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"stock-quotes/internal/application"
	"stock-quotes/internal/infrastructure/httpx"

	"go.uber.org/zap"
)

const (
	fmpQuotePath = "/api/v3/quote/"
)

// FMPProvider fetches quotes from Financial Modeling Prep.
type FMPProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
	Log     *zap.Logger
}

var _ application.QuoteSource = (*FMPProvider)(nil)

// QuoteURL builds the quote endpoint URL. The ticker list goes into the path
// as given, unsplit.
func (p *FMPProvider) QuoteURL(tickers string) (string, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("fmp: invalid base url: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + fmpQuotePath + tickers
	q := u.Query()
	q.Set("apikey", p.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch issues one GET and returns the body as is. A non-2xx status is not an
// error here: the body goes on to the matcher, which rejects what it cannot
// parse.
func (p *FMPProvider) Fetch(ctx context.Context, tickers string) ([]byte, error) {
	if p.BaseURL == "" {
		return nil, errors.New("fmp: missing configuration")
	}
	rawURL, err := p.QuoteURL(tickers)
	if err != nil {
		return nil, err
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{Log: p.Log}
	}
	resp, err := client.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fmp: %w: %w", application.ErrTransport, err)
	}

	if resp.StatusCode/100 != 2 && p.Log != nil {
		p.Log.Warn("fmp.non_2xx",
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", resp.RequestID),
		)
	}
	return resp.Body, nil
}
