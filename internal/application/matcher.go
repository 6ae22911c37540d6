package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"stock-quotes/internal/domain"
)

type MatchMode string

const (
	// MatchStrict returns quotes in request order and fails on the first
	// requested ticker missing from the response.
	MatchStrict MatchMode = "strict"
	// MatchSet keeps response records whose symbol was requested, in
	// response order. Missing tickers are dropped silently.
	MatchSet MatchMode = "set"
)

// ParseMatchMode maps a flag or env value to a MatchMode. Empty means strict.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchStrict:
		return MatchStrict, nil
	case MatchSet:
		return MatchSet, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchMode, s)
	}
}

func NewMatcher(mode MatchMode) (Matcher, error) {
	switch mode {
	case MatchStrict:
		return StrictMatcher{}, nil
	case MatchSet:
		return SetMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatchMode, string(mode))
	}
}

// field decodes elem[key] into a *T. The key must match exactly: a missing
// key and a JSON null both yield nil.
func field[T any](elem map[string]json.RawMessage, key string) (*T, error) {
	raw, ok := elem[key]
	if !ok {
		return nil, nil
	}
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// DecodeQuotes parses a JSON array of quote objects. Any element lacking a
// string "symbol" or a numeric "price" fails the whole payload. Keys are
// case-sensitive; fields other than symbol, price and change are ignored.
func DecodeQuotes(body []byte) ([]domain.Quote, error) {
	var elems []map[string]json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if elems == nil {
		return nil, fmt.Errorf("%w: expected array, got null", ErrMalformedResponse)
	}

	out := make([]domain.Quote, 0, len(elems))
	for i, elem := range elems {
		symbol, err := field[string](elem, "symbol")
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrMalformedResponse, i, err)
		}
		if symbol == nil {
			return nil, fmt.Errorf("%w: element %d: missing symbol", ErrMalformedResponse, i)
		}
		price, err := field[float64](elem, "price")
		if err != nil {
			return nil, fmt.Errorf("%w: element %d (%s): %w", ErrMalformedResponse, i, *symbol, err)
		}
		if price == nil {
			return nil, fmt.Errorf("%w: element %d (%s): missing price", ErrMalformedResponse, i, *symbol)
		}
		change, err := field[float64](elem, "change")
		if err != nil {
			return nil, fmt.Errorf("%w: element %d (%s): %w", ErrMalformedResponse, i, *symbol, err)
		}
		out = append(out, domain.Quote{
			Symbol: *symbol,
			Price:  *price,
			Change: change,
		})
	}
	return out, nil
}

type StrictMatcher struct{}

var _ Matcher = StrictMatcher{}

func (StrictMatcher) Mode() MatchMode { return MatchStrict }

func (StrictMatcher) Match(body []byte, tickers []string) ([]domain.Quote, error) {
	quotes, err := DecodeQuotes(body)
	if err != nil {
		return nil, err
	}

	// last write wins on duplicate symbols
	bySymbol := make(map[string]domain.Quote, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q
	}

	found := make([]domain.Quote, 0, len(tickers))
	for _, t := range tickers {
		q, ok := bySymbol[t]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrTickerNotFound, t)
		}
		found = append(found, q)
	}
	return found, nil
}

type SetMatcher struct{}

var _ Matcher = SetMatcher{}

func (SetMatcher) Mode() MatchMode { return MatchSet }

func (SetMatcher) Match(body []byte, tickers []string) ([]domain.Quote, error) {
	quotes, err := DecodeQuotes(body)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(tickers))
	for _, t := range tickers {
		wanted[t] = struct{}{}
	}

	out := make([]domain.Quote, 0, len(wanted))
	for _, q := range quotes {
		if _, ok := wanted[q.Symbol]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}
