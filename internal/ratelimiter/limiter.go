package ratelimiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyLimiters holds one token bucket limiter per client key (usually the
// remote IP). Each limiter refills at ratePerSec and holds at most burst
// tokens. A zero rate disables limiting entirely.
//
// At most maxKeys keys are tracked; a new key beyond that evicts the least
// recently seen one.
type KeyLimiters struct {
	mu       sync.Mutex
	limiters map[string]*entry
	r        rate.Limit
	burst    int
	maxKeys  int
	now      func() time.Time
}

// DefaultMaxKeys bounds the per-key map between sweeps.
const DefaultMaxKeys = 10000

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a KeyLimiters with ratePerSec tokens per second per key.
func New(ratePerSec float64, burst int) *KeyLimiters {
	return &KeyLimiters{
		limiters: make(map[string]*entry),
		r:        rate.Limit(ratePerSec),
		burst:    burst,
		maxKeys:  DefaultMaxKeys,
		now:      time.Now,
	}
}

// Enabled reports whether requests can ever be rejected.
func (kl *KeyLimiters) Enabled() bool { return kl.r > 0 }

// Allow consumes a token from key's bucket, reporting false when empty.
func (kl *KeyLimiters) Allow(key string) bool {
	if !kl.Enabled() {
		return true
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()

	now := kl.now()
	e, ok := kl.limiters[key]
	if !ok {
		if len(kl.limiters) >= kl.maxKeys {
			kl.evictOldest()
		}
		e = &entry{limiter: rate.NewLimiter(kl.r, kl.burst)}
		kl.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// evictOldest removes the least recently seen key. Callers hold mu.
func (kl *KeyLimiters) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, e := range kl.limiters {
		if !found || e.lastSeen.Before(oldest) {
			oldestKey, oldest, found = key, e.lastSeen, true
		}
	}
	if found {
		delete(kl.limiters, oldestKey)
	}
}

// Sweep drops keys not seen for longer than idle and returns how many were removed.
func (kl *KeyLimiters) Sweep(idle time.Duration) int {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	cutoff := kl.now().Add(-idle)
	removed := 0
	for key, e := range kl.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(kl.limiters, key)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (kl *KeyLimiters) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			kl.Sweep(idle)
		}
	}
}

// Len returns the number of tracked keys.
func (kl *KeyLimiters) Len() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	return len(kl.limiters)
}
