// Package ratelimit implements sliding-window call admission for metered
// upstream services. A denial is a normal outcome, not an error: callers get
// a cooldown and decide whether to wait or skip.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Defaults applied when a Limiter is constructed with non-positive settings.
const (
	DefaultMaxCalls = 5
	DefaultWindow   = time.Minute
)

type window struct {
	start time.Time
	calls int
}

// Limiter tracks one window per service key. Safe for concurrent use.
type Limiter struct {
	maxCalls int
	window   time.Duration
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// New creates a limiter allowing maxCalls per windowDuration for each
// service key independently.
func New(maxCalls int, windowDuration time.Duration) *Limiter {
	if maxCalls <= 0 {
		maxCalls = DefaultMaxCalls
	}
	if windowDuration <= 0 {
		windowDuration = DefaultWindow
	}
	return &Limiter{
		maxCalls: maxCalls,
		window:   windowDuration,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Admit reports whether a call to the given service may proceed. When the
// call is denied, retryAfter is the number of whole seconds (rounded up)
// until the window resets. Admission increments the window counter.
func (l *Limiter) Admit(serviceKey string) (allowed bool, retryAfter int) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[serviceKey]
	if !ok {
		w = &window{start: now}
		l.windows[serviceKey] = w
	}

	if now.Sub(w.start) > l.window {
		w.start = now
		w.calls = 0
	}

	if w.calls >= l.maxCalls {
		remaining := l.window - now.Sub(w.start)
		retryAfter = int(math.Ceil(remaining.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, retryAfter
	}

	w.calls++
	return true, 0
}

// Reset clears the window for a service key, readmitting callers
// immediately. Intended for tests and admin tooling.
func (l *Limiter) Reset(serviceKey string) {
	l.mu.Lock()
	delete(l.windows, serviceKey)
	l.mu.Unlock()
}

// SetNow overrides the clock. Tests only.
func (l *Limiter) SetNow(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}
