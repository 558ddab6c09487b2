package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("Expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("Expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

// waitBriefly reports whether a copy to path is let through within 20ms
func waitBriefly(limiter *Limiter, path string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	return limiter.Wait(ctx, path) == nil
}

func TestLimiter_UnlimitedByDefault(t *testing.T) {
	limiter := NewLimiter(0, 1)
	for i := 0; i < 100; i++ {
		if !waitBriefly(limiter, "/mnt/backup/file.dat") {
			t.Fatalf("Expected unlimited copies, refused at %d", i)
		}
	}
}

func TestLimiter_PerVolume(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if err := limiter.Wait(context.Background(), "/mnt/backup/a.dat"); err != nil {
		t.Fatalf("First wait failed: %v", err)
	}

	if waitBriefly(limiter, "/mnt/backup/other/b.dat") {
		t.Error("Expected second copy to the same volume to be throttled")
	}
	if !waitBriefly(limiter, "/media/usb/c.dat") {
		t.Error("Expected copy to another volume to pass")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.01, 1)
	_ = limiter.Wait(context.Background(), "/mnt/x")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "/mnt/y"); err == nil {
		t.Error("Expected Wait to fail once the context expires")
	}
}

func TestVolume(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/mnt/backup/x/y.dat", "/mnt"},
		{"/file.dat", "/file.dat"},
		{"out/sub/y.dat", "out"},
		{"y.dat", "y.dat"},
	}

	for _, tt := range tests {
		if got := Volume(tt.path); got != tt.expected {
			t.Errorf("Volume(%q): expected %q, got %q", tt.path, tt.expected, got)
		}
	}
}
