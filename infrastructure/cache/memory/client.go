// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides TTL support, automatic cleanup and glob pattern invalidation

package memory

import (
	"context"
	"errors"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = 10 * time.Minute

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("key not found")

// MemoryCache implements the Cache interface using go-cache storage
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache(defaultExpiration time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, defaultCleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	stored := value.([]byte)

	// Return a copy so callers cannot mutate the cached bytes
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache. A zero TTL stores the value until
// explicitly deleted.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	c.cache.Set(key, stored, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// DeletePattern removes all keys matching a glob-style pattern
func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	for key := range c.cache.Items() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return err
		}
		if matched {
			c.cache.Delete(key)
		}
	}
	return nil
}
