// Package cache contains the geocode memoization backends.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"depot/internal/domain/entity"
	"depot/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisCache implements service.GeocodeCache on Redis, sharing geocoded
// results across processes.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed geocode cache.
func NewRedisCache(client *redis.Client) service.GeocodeCache {
	return &redisCache{client: client}
}

// Get returns the cached point and whether the key was present.
func (c *redisCache) Get(ctx context.Context, key string) (entity.GeoPoint, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.GeoPoint{}, false, nil
	}
	if err != nil {
		return entity.GeoPoint{}, false, errors.Wrap(err, "redis get failed")
	}

	var point entity.GeoPoint
	if err := json.Unmarshal(raw, &point); err != nil {
		// A corrupt entry behaves like a miss and gets overwritten.
		return entity.GeoPoint{}, false, nil
	}

	return point, true, nil
}

// Set stores the point under key for the given lifetime.
func (c *redisCache) Set(ctx context.Context, key string, point entity.GeoPoint, ttl time.Duration) error {
	raw, err := json.Marshal(point)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}
