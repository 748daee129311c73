// Package service defines interfaces for infrastructure collaborators used
// by the application layer.
package service

import (
	"context"

	"depot/internal/domain/entity"
	"depot/internal/errors"
)

// ErrNoMatch is returned by a GeoProvider when the address yields no result.
// Network failures, malformed bodies and non-OK provider statuses are all
// reported through errors; callers treat every error as "no result, try the
// next candidate".
var ErrNoMatch = errors.New("no geocoding match")

// GeoProvider resolves a free-text address to coordinates. Lookups are
// biased to a single country to avoid ambiguous matches.
type GeoProvider interface {
	// Name identifies the provider in logs and cache metadata.
	Name() string

	// Lookup geocodes the address. countryCode is an ISO 3166-1 alpha-2
	// code the query is restricted to.
	Lookup(ctx context.Context, address, countryCode string) (entity.GeoPoint, error)
}

// GeoProviderChain is the ordered provider pair used for lookups. Primary is
// nil when no API key is configured; Fallback is always available.
type GeoProviderChain struct {
	Primary  GeoProvider
	Fallback GeoProvider
}
