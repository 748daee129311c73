package service

import (
	"context"
	"time"

	"depot/internal/domain/entity"
)

// GeocodeCache memoizes geocoding results by normalized-address hash.
// Stale or duplicate writes are harmless: the same key is only ever written
// with equivalent data, so implementations need no cross-request locking.
type GeocodeCache interface {
	// Get returns the cached point and whether the key was present.
	Get(ctx context.Context, key string) (entity.GeoPoint, bool, error)

	// Set stores the point under key for the given lifetime.
	Set(ctx context.Context, key string, point entity.GeoPoint, ttl time.Duration) error
}
