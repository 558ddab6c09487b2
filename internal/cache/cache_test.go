package cache

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	a := CacheKey("/share/a.dat")
	b := CacheKey("/share/b.dat")

	if !strings.HasPrefix(a, "dataextraction:v1:") {
		t.Errorf("Expected versioned prefix, got %s", a)
	}
	if a == b {
		t.Error("Expected distinct keys for distinct paths")
	}
	if a != CacheKey("/share/a.dat") {
		t.Error("Expected stable keys")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	info := FileInfo{Size: 42, ModTime: time.Unix(1700000000, 0).UTC()}

	if _, ok := c.Get("k"); ok {
		t.Fatal("Expected miss on empty cache")
	}
	if err := c.Set("k", info, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := c.Get("k")
	if !ok || got != info {
		t.Errorf("Expected %+v, got %+v (hit=%v)", info, got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_ZeroTTLUsesDefault(t *testing.T) {
	c := NewMemoryCache(30*time.Millisecond, time.Minute)
	info := FileInfo{Size: 7}

	_ = c.Set("default", info, 0)
	_ = c.Set("longer", info, time.Minute)

	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get("default"); ok {
		t.Error("Expected ttl 0 entry to expire with the default TTL")
	}
	if _, ok := c.Get("longer"); !ok {
		t.Error("Expected explicit ttl entry to survive")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := CacheKey("/share/rec.brw")
	info := FileInfo{Size: 7, ModTime: time.Unix(1700000000, 0).UTC()}

	if err := c.Set(key, info, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := NewDiskCache(dir, time.Hour).Get(key)
	if !ok || got.Size != 7 || !got.ModTime.Equal(info.ModTime) {
		t.Errorf("Expected entry to survive a new instance, got %+v (hit=%v)", got, ok)
	}

	if err := c.Set(key, info, -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := c.Get(key); ok {
		t.Error("Expected expired entry to miss")
	}

	if err := c.Delete(key); err != nil {
		t.Errorf("Expected deleting a missing entry to succeed, got %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	key := CacheKey("/share/rec.dat")
	info := FileInfo{Size: 99}

	if err := NewDiskCache(dir, time.Hour).Set(key, info, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Hour)
	if got, ok := layered.Get(key); !ok || got.Size != 99 {
		t.Fatalf("Expected disk hit, got %+v (hit=%v)", got, ok)
	}
	if _, ok := layered.memory.Get(key); !ok {
		t.Error("Expected disk hit to be promoted to memory")
	}
}

func TestStatCache_Stat(t *testing.T) {
	sc := NewStatCache(NewMemoryCache(time.Minute, time.Minute), 0)
	calls := 0
	stat := func(path string) (FileInfo, error) {
		calls++
		return FileInfo{Size: int64(len(path))}, nil
	}

	info, hit, err := sc.Stat("/a/b.dat", stat)
	if err != nil || hit || info.Size != 8 {
		t.Fatalf("Expected miss with size 8, got %+v hit=%v err=%v", info, hit, err)
	}

	info, hit, err = sc.Stat("/a/b.dat", stat)
	if err != nil || !hit || info.Size != 8 {
		t.Fatalf("Expected hit with size 8, got %+v hit=%v err=%v", info, hit, err)
	}
	if calls != 1 {
		t.Errorf("Expected one stat call, got %d", calls)
	}

	_, _, err = sc.Stat("/missing", func(string) (FileInfo, error) {
		return FileInfo{}, errors.New("gone")
	})
	if err == nil {
		t.Error("Expected stat error to propagate")
	}
}
