// Package cache remembers file stat results between catalog runs, so
// repeated scans of a slow network share do not stat every file again.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// FileInfo is the part of a stat result the catalog needs
type FileInfo struct {
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Cache defines the interface for stat caching
type Cache interface {
	Get(key string) (FileInfo, bool)
	Set(key string, info FileInfo, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a file path
func CacheKey(path string) string {
	hash := sha256.Sum256([]byte(path))
	return "dataextraction:v1:" + hex.EncodeToString(hash[:])
}

// StatFunc stats one file
type StatFunc func(path string) (FileInfo, error)

// StatCache serves stat results from a cache, falling back to stat
type StatCache struct {
	cache Cache
	ttl   time.Duration
}

// NewStatCache wraps a cache; ttl 0 uses the cache's default
func NewStatCache(c Cache, ttl time.Duration) *StatCache {
	return &StatCache{cache: c, ttl: ttl}
}

// Stat returns the cached info for path or stats it and stores the result.
// hit reports whether the cache answered.
func (s *StatCache) Stat(path string, stat StatFunc) (info FileInfo, hit bool, err error) {
	key := CacheKey(path)
	if info, ok := s.cache.Get(key); ok {
		return info, true, nil
	}

	info, err = stat(path)
	if err != nil {
		return FileInfo{}, false, err
	}

	// A failed write only costs a stat next time
	_ = s.cache.Set(key, info, s.ttl)
	return info, false, nil
}
