package cache

import (
	"context"
	"sync"
	"time"

	"depot/internal/domain/entity"
	"depot/internal/domain/service"
)

type memoryEntry struct {
	point     entity.GeoPoint
	expiresAt time.Time
}

// memoryCache implements service.GeocodeCache in process memory. It is the
// default when no Redis is configured; entries do not survive restarts.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an in-process geocode cache.
func NewMemoryCache() service.GeocodeCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the cached point and whether the key was present and fresh.
func (c *memoryCache) Get(_ context.Context, key string) (entity.GeoPoint, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return entity.GeoPoint{}, false, nil
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return entity.GeoPoint{}, false, nil
	}

	return entry.point, true, nil
}

// Set stores the point under key for the given lifetime.
func (c *memoryCache) Set(_ context.Context, key string, point entity.GeoPoint, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		point:     point,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()

	return nil
}
