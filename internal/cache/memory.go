package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps stat results for the lifetime of the process
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a stat result from the cache
func (c *MemoryCache) Get(key string) (FileInfo, bool) {
	if val, found := c.cache.Get(key); found {
		if info, ok := val.(FileInfo); ok {
			return info, true
		}
	}
	return FileInfo{}, false
}

// Set stores a stat result; ttl 0 (gocache.DefaultExpiration) uses the
// default expiration
func (c *MemoryCache) Set(key string, info FileInfo, ttl time.Duration) error {
	c.cache.Set(key, info, ttl)
	return nil
}

// Delete removes a stat result from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear drops every entry
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

// Len returns the number of cached entries, including expired ones not yet evicted
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
