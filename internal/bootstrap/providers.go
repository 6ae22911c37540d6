package bootstrap

import (
	"fmt"
	"net/http"

	"stock-quotes/internal/application"
	"stock-quotes/internal/config"
	"stock-quotes/internal/infrastructure/httpx"
	"stock-quotes/internal/infrastructure/logx"
	"stock-quotes/internal/infrastructure/provider"

	"go.uber.org/zap"
)

func ProvideLogger() *zap.Logger { return logx.L() }

// ProvideHTTPClient uses a plain http.Client: no timeout override, no TLS
// customisation.
func ProvideHTTPClient(log *zap.Logger) *httpx.Client {
	return &httpx.Client{HTTP: &http.Client{}, Log: log}
}

func ProvideQuoteSource(cfg config.Config, client *httpx.Client, log *zap.Logger) (application.QuoteSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case config.ProviderFMP:
		return &provider.FMPProvider{
			BaseURL: cfg.APIBase,
			APIKey:  cfg.APIKey,
			Client:  client,
			Log:     log,
		}, nil
	case config.ProviderFake:
		return provider.NewFake(provider.SampleBody), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}

func ProvideMatcher(cfg config.Config) (application.Matcher, error) {
	mode, err := application.ParseMatchMode(cfg.MatchMode)
	if err != nil {
		return nil, err
	}
	return application.NewMatcher(mode)
}

func ProvideQuoteService(src application.QuoteSource, m application.Matcher, log *zap.Logger) *application.QuoteService {
	return application.NewQuoteService(src, m, application.WithLogger(log))
}
