package usecase

import (
	"context"

	"depot/internal/domain/entity"
)

// GeocodeResult represents a resolved address
type GeocodeResult struct {
	Point    entity.GeoPoint `json:"point"`
	Provider string          `json:"provider"` // Provider that produced the hit, "cache" on a cache hit
}

// GeocodingUsecase defines the interface for address resolution use cases
type GeocodingUsecase interface {
	// Geocode resolves a free-text address to coordinates. found is false
	// when every provider and candidate combination failed; this is a normal
	// outcome, not an error. An empty address resolves to not-found.
	Geocode(ctx context.Context, address string) (result *GeocodeResult, found bool, err error)

	// Candidates returns the ordered candidate strings that would be tried
	// for an address, most specific first, duplicates removed.
	Candidates(address string) []string
}
