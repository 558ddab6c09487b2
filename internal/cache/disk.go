package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists stat results across runs as one JSON file per key
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a new disk cache
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: dir,
		ttl: ttl,
	}
}

type diskEntry struct {
	Info      FileInfo  `json:"info"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get reads a stat result; expired or unreadable entries are misses
func (c *DiskCache) Get(key string) (FileInfo, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return FileInfo{}, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return FileInfo{}, false
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return FileInfo{}, false
	}

	return entry.Info, true
}

// Set writes a stat result
func (c *DiskCache) Set(key string, info FileInfo, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(diskEntry{
		Info:      info,
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Delete removes one entry; a missing entry is not an error
func (c *DiskCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes the cache directory
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *DiskCache) path(key string) string {
	// Keys contain ':' which Windows does not allow in file names
	return filepath.Join(c.dir, hexName(key)+".json")
}

func hexName(key string) string {
	const prefix = "dataextraction:v1:"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return "v1-" + key[len(prefix):]
	}
	return fmt.Sprintf("%x", key)
}
