package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/creativespark/creativespark/internal/model"
)

const (
	// sessionCachePrefix is the Redis key prefix for session context cache.
	sessionCachePrefix = "session:ctx:"
	// sessionCacheTTL is the time-to-live for cached session contexts.
	// Kept short so account changes propagate quickly.
	sessionCacheTTL = 5 * time.Minute
)

// GetSession retrieves a cached session context by cache key
// (a hash of the bearer token, never the token itself).
// Returns nil on a cache miss.
func (c *Cache) GetSession(ctx context.Context, cacheKey string) (*model.Session, error) {
	key := sessionCachePrefix + cacheKey

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Cache miss is not an error
		return nil, nil //nolint:nilerr
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &session, nil
}

// SetSession caches a session context.
func (c *Cache) SetSession(ctx context.Context, cacheKey string, session *model.Session) error {
	key := sessionCachePrefix + cacheKey

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return c.client.Set(ctx, key, data, sessionCacheTTL).Err()
}

// DeleteSession removes a cached session context.
func (c *Cache) DeleteSession(ctx context.Context, cacheKey string) error {
	key := sessionCachePrefix + cacheKey
	return c.client.Del(ctx, key).Err()
}
