package geocode

import (
	"log/slog"
	"time"

	"depot/config"
	"depot/internal/domain/service"

	"go.uber.org/fx"
)

const defaultRequestTimeout = 10 * time.Second

// ChainParams holds dependencies for the provider chain, injected by Fx
type ChainParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProviderChain builds the ordered provider pair from configuration.
// The paid provider is only part of the chain when an API key is set; the
// free fallback is always present.
func NewProviderChain(params ChainParams) service.GeoProviderChain {
	var (
		apiKey            string
		googleEndpoint    string
		nominatimEndpoint string
		userAgent         string
		timeout           = defaultRequestTimeout
	)

	if cfg := params.Config.Geocoding; cfg != nil {
		apiKey = cfg.APIKey
		googleEndpoint = cfg.GoogleEndpoint
		nominatimEndpoint = cfg.NominatimEndpoint
		userAgent = cfg.UserAgent
		if cfg.RequestTimeout > 0 {
			timeout = cfg.RequestTimeout
		}
	}

	chain := service.GeoProviderChain{
		Fallback: NewNominatimProvider(nominatimEndpoint, userAgent, timeout),
	}

	if apiKey != "" {
		chain.Primary = NewGoogleProvider(googleEndpoint, apiKey, timeout)
		params.Logger.Info("geocoding primary provider enabled",
			slog.String("provider", chain.Primary.Name()),
		)
	} else {
		params.Logger.Info("no geocoding API key configured, using fallback provider only")
	}

	return chain
}
