// mediahub/models/services.go
package models

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// --- Stateful Services ---

// StorageService abstracts where uploaded media blobs live (local disk or
// S3-compatible object storage).
type StorageService interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, url string) error
}

// RateLimiter throttles login attempts per remote address.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	every    time.Duration
	burst    int
}

// NewRateLimiter creates a limiter allowing one attempt per `every` with the
// given burst, and starts a goroutine that prunes entries idle longer than
// `expire` at each `prune` interval.
func NewRateLimiter(every time.Duration, burst int, prune, expire time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		every:    every,
		burst:    burst,
	}
	go rl.cleanup(prune, expire)
	return rl
}

// Allow reports whether the given address may attempt a login now.
func (rl *RateLimiter) Allow(addr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.limiters[addr]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(rl.every), rl.burst)
		rl.limiters[addr] = limiter
	}
	rl.lastSeen[addr] = time.Now()
	return limiter.Allow()
}

func (rl *RateLimiter) cleanup(prune, expire time.Duration) {
	for range time.Tick(prune) {
		rl.mu.Lock()
		cutoff := time.Now().Add(-expire)
		for addr, seen := range rl.lastSeen {
			if seen.Before(cutoff) {
				delete(rl.limiters, addr)
				delete(rl.lastSeen, addr)
			}
		}
		rl.mu.Unlock()
	}
}
