package application

import (
	"context"

	"stock-quotes/internal/domain"

	"go.uber.org/zap"
)

type QuoteService struct {
	source  QuoteSource
	matcher Matcher
	log     *zap.Logger
}

type Option func(*QuoteService)

func WithLogger(l *zap.Logger) Option { return func(s *QuoteService) { s.log = l } }

func NewQuoteService(source QuoteSource, matcher Matcher, opts ...Option) *QuoteService {
	s := &QuoteService{
		source:  source,
		matcher: matcher,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Mode reports the matching variant the service was built with.
func (s *QuoteService) Mode() MatchMode { return s.matcher.Mode() }

// Lookup fetches quotes for a comma-separated ticker list and matches them
// against the request. It returns either every matched quote or an error,
// never a partial result.
func (s *QuoteService) Lookup(ctx context.Context, rawTickers string) ([]domain.Quote, error) {
	tickers := domain.ParseTickers(rawTickers)
	log := s.log.With(
		zap.String("tickers", rawTickers),
		zap.String("mode", string(s.matcher.Mode())),
	)

	body, err := s.source.Fetch(ctx, rawTickers)
	if err != nil {
		log.Debug("quotes.fetch_failed", zap.Error(err))
		return nil, err
	}

	quotes, err := s.matcher.Match(body, tickers)
	if err != nil {
		log.Debug("quotes.match_failed", zap.Error(err), zap.Int("body_bytes", len(body)))
		return nil, err
	}
	log.Debug("quotes.matched",
		zap.Int("requested", len(tickers)),
		zap.Int("matched", len(quotes)),
	)
	return quotes, nil
}
