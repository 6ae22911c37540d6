//go:build wireinject

package bootstrap

import (
	"stock-quotes/internal/application"
	"stock-quotes/internal/config"

	"github.com/google/wire"
)

var quoteSet = wire.NewSet(
	ProvideLogger,
	ProvideHTTPClient,
	ProvideQuoteSource,
	ProvideMatcher,
	ProvideQuoteService,
)

// InitQuoteService builds the quote lookup pipeline from configuration.
func InitQuoteService(cfg config.Config) (*application.QuoteService, error) {
	wire.Build(quoteSet)
	return nil, nil
}
