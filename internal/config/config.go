package config

import (
	"errors"
	"fmt"
	"os"
)

const (
	ProviderFMP  = "fmp"
	ProviderFake = "fake"

	DefaultAPIBase  = "https://financialmodelingprep.com"
	DefaultLogLevel = "warn"
)

var (
	ErrMissingAPIKey   = errors.New("PMP_KEY environment variable not set")
	ErrUnknownProvider = errors.New("unknown quotes provider")
)

type Config struct {
	// Common
	LogLevel string
	// Provider
	Provider string
	APIBase  string
	APIKey   string
	// APIKeySet is true when PMP_KEY is present, even if empty.
	APIKeySet bool
	// Matching
	MatchMode string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads environment variables and applies defaults.
func Load() Config {
	apiKey, apiKeySet := os.LookupEnv("PMP_KEY")
	return Config{
		LogLevel:  getEnv("LOG_LEVEL", DefaultLogLevel),
		Provider:  getEnv("QUOTES_PROVIDER", ProviderFMP),
		APIBase:   getEnv("QUOTES_API_BASE", DefaultAPIBase),
		APIKey:    apiKey,
		APIKeySet: apiKeySet,
		MatchMode: getEnv("QUOTES_MATCH_MODE", ""),
	}
}

// Validate reports configuration errors that must stop the program before
// any request goes out.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderFMP:
		if c.APIKey == "" && !c.APIKeySet {
			return ErrMissingAPIKey
		}
	case ProviderFake:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	return nil
}
