package cache

import (
	"errors"
	"time"
)

// LayeredCache checks memory first, then disk
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a memory + disk stat cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get returns a stat result, promoting disk hits to memory
func (c *LayeredCache) Get(key string) (FileInfo, bool) {
	if info, found := c.memory.Get(key); found {
		return info, true
	}

	if info, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, info, 0)
		return info, true
	}

	return FileInfo{}, false
}

// Set stores a stat result in both layers
func (c *LayeredCache) Set(key string, info FileInfo, ttl time.Duration) error {
	if err := c.memory.Set(key, info, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, info, ttl)
}

// Delete removes a stat result from both layers
func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.memory.Delete(key), c.disk.Delete(key))
}

// Clear empties both layers
func (c *LayeredCache) Clear() error {
	return errors.Join(c.memory.Clear(), c.disk.Clear())
}
