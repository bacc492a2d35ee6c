package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Decision is the outcome of one Allow call. RetryAfter is set only when
// the request is denied.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds, at least 1.
func (d Decision) RetryAfterSeconds() int {
	return max(int(math.Ceil(d.RetryAfter.Seconds())), 1)
}

type window struct {
	count   int
	resetAt time.Time
}

// Limiter is an in-memory fixed-window counter per key. It is safe for
// concurrent use; state is per process.
type Limiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

func New(limit int, period time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Allow counts one request for key.
func (l *Limiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}

	if w.count >= l.limit {
		return Decision{RetryAfter: w.resetAt.Sub(now)}
	}
	w.count++
	return Decision{Allowed: true, Remaining: l.limit - w.count}
}

// sweep drops expired windows at most once per period. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.period {
		return
	}
	for k, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, k)
		}
	}
	l.lastSweep = now
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
