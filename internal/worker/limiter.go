package worker

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles file copies per destination volume
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter allowing filesPerSecond copies per volume.
// A rate of zero or less disables throttling.
func NewLimiter(filesPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}

	limit := rate.Limit(filesPerSecond)
	if filesPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  limit,
		defaultBurst: burst,
	}
}

// Wait blocks until a copy to path is allowed
func (l *Limiter) Wait(ctx context.Context, path string) error {
	return l.getLimiter(Volume(path)).Wait(ctx)
}

func (l *Limiter) getLimiter(volume string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[volume]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[volume]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[volume] = limiter

	return limiter
}

// Volume names the storage a path lives on: the drive or UNC share on
// Windows, otherwise the first path element ("/mnt/x/y" is "/mnt").
func Volume(path string) string {
	if v := filepath.VolumeName(path); v != "" {
		return v
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	if !strings.HasPrefix(clean, "/") {
		if i := strings.IndexByte(clean, '/'); i > 0 {
			return clean[:i]
		}
		return clean
	}

	rest := clean[1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return "/" + rest[:i]
	}
	return "/" + rest
}
