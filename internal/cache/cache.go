// Package cache keeps the last good content payloads in Redis so page
// views don't hammer the hosted table store. Entirely optional: a nil
// *Cache disables caching.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis, or returns nil (caching disabled) when no address
// is configured.
func New(address, username, password string, ttl time.Duration) *Cache {
	if address == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get loads key into dest. Returns false on miss, decode error, or when
// caching is disabled.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		c.rdb.Del(ctx, key)
		return false
	}
	return true
}

// Set stores value under key for the configured TTL. Failures are logged
// and ignored; the cache is best effort.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to marshal cache entry")
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msgf("failed to add %s to redis", key)
	}
}
