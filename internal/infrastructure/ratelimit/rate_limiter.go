package ratelimit

import (
	"context"
	"sync"
	"time"
)

// bucket is a token bucket refilled continuously at rate tokens/second.
type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64
	lastRefill time.Time
}

// Limiter throttles actions per key (user id plus action name). It is used
// to keep a single staff account from hammering mutation endpoints.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	max     float64
	rate    float64
}

// NewLimiter allows burst actions immediately, refilling at perSecond.
func NewLimiter(burst int, perSecond float64) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		max:     float64(burst),
		rate:    perSecond,
	}
}

// Allow reports whether the keyed action may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			tokens:     l.max,
			maxTokens:  l.max,
			refillRate: l.rate,
			lastRefill: now,
		}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Janitor prunes idle buckets on a fixed interval until ctx is done, so
// the bucket map does not grow with every key ever seen.
func (l *Limiter) Janitor(ctx context.Context, every, maxIdle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune(maxIdle)
		}
	}
}

// Prune drops buckets idle longer than maxIdle.
func (l *Limiter) Prune(maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := time.Now().Add(-maxIdle)
	for key, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
