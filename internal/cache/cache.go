// Package cache memoizes resolved HMC resources so that one command
// invocation does not re-resolve the same CPC or partition name on every
// sub-step.
package cache

import (
	"time"

	"github.com/robfig/go-cache"
)

// CleanupInterval is how often expired cache entries are removed.
const CleanupInterval = 30 * time.Second

// Cache wraps robfig/go-cache. A zero TTL disables caching entirely.
type Cache struct {
	store *cache.Cache
	ttl   time.Duration
}

// New creates an in-memory cache. If ttl is 0, caching is disabled.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: cache.New(0, CleanupInterval),
		ttl:   ttl,
	}
}

// Set stores a value with the given TTL. A zero ttl uses the default; a
// negative ttl skips caching for this item.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if c.ttl == 0 {
		return
	}

	if ttl == 0 {
		ttl = c.ttl
	} else if ttl < 0 {
		return
	}

	c.store.Set(key, value, ttl)
}

// Get retrieves a value. Returns nil, false when absent, expired or when
// caching is disabled.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl == 0 {
		return nil, false
	}

	return c.store.Get(key)
}

// IsEnabled returns whether caching is enabled (TTL > 0).
func (c *Cache) IsEnabled() bool {
	return c.ttl > 0
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}
