package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Local is the in-process limiter used when no Redis is configured.
// One token bucket per client key, refilled at limit/window. Idle
// buckets are evicted by Sweep, which the sweep worker calls on a
// schedule.
type Local struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func NewLocal() *Local {
	return &Local{buckets: make(map[string]*bucket)}
}

// Allow reports whether the caller identified by key may proceed.
// limit and window describe the same fixed-window budget the Redis
// limiter uses; here they size the bucket's burst and refill rate.
func (l *Local) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 || window <= 0 {
		return true, nil
	}
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Limit(float64(limit)/window.Seconds()), limit)}
		l.buckets[key] = b
	}
	b.seen = time.Now()
	l.mu.Unlock()
	return b.lim.Allow(), nil
}

// Sweep drops buckets that have not been touched for olderThan and
// returns how many were evicted.
func (l *Local) Sweep(olderThan time.Duration) int {
	cutoff := time.Now().Add(-olderThan)
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for k, b := range l.buckets {
		if b.seen.Before(cutoff) {
			delete(l.buckets, k)
			n++
		}
	}
	return n
}

// Size reports the number of live buckets.
func (l *Local) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
