// Package ratelimit provides fixed-window attempt counters keyed by client
// address.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned once a key has used up its attempts for the window.
var ErrRateLimited = errors.New("too many attempts")

const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 15 * time.Minute

	// pruneEvery controls how often expired windows are dropped from memory.
	pruneEvery = 1024
)

// Result describes the state of a key after an attempt was counted.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is the time left until the key's window resets.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if d := r.ResetAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Limiter counts attempts per key. Allow counts the attempt and decides in a
// single atomic step.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	// Reset clears the key's window. Used by tests and administrative
	// unblocking; request handling never calls it.
	Reset(ctx context.Context, key string) error
}

type window struct {
	count int
	start time.Time
}

// MemoryLimiter is a process-local fixed-window Limiter.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	window  time.Duration
	now     func() time.Time
	calls   int
}

// NewMemoryLimiter creates a limiter allowing limit attempts per window.
// Non-positive values fall back to 5 attempts per 15 minutes.
func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	if period <= 0 {
		period = DefaultWindow
	}
	return &MemoryLimiter{
		windows: make(map[string]*window),
		max:     limit,
		window:  period,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.start.Add(l.window)) {
		w = &window{start: now}
		l.windows[key] = w
	}
	w.count++

	l.calls++
	if l.calls%pruneEvery == 0 {
		l.pruneLocked(now)
	}

	return Result{
		Allowed:   w.count <= l.max,
		Limit:     l.max,
		Remaining: max(0, l.max-w.count),
		ResetAt:   w.start.Add(l.window),
	}, nil
}

func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.windows, key)
	l.mu.Unlock()
	return nil
}

// Attempts returns the attempts counted for key in its current window. It is
// an inspection hook for tests and administrative tooling.
func (l *MemoryLimiter) Attempts(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !l.now().Before(w.start.Add(l.window)) {
		return 0
	}
	return w.count
}

func (l *MemoryLimiter) pruneLocked(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.start.Add(l.window)) {
			delete(l.windows, key)
		}
	}
}
