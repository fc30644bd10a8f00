// Package health tracks per-provider upstream health so repeated calls to a
// throttled provider can short-circuit to synthetic data instead of burning
// quota on requests that are known to fail.
package health

import (
	"sync"
	"time"
)

// Status is the provider health state.
type Status string

const (
	StatusActive      Status = "active"
	StatusRateLimited Status = "rate_limited"
	StatusError       Status = "error"
)

// DefaultCooldown is how long a rate-limited provider is bypassed before
// the next optimistic retry.
const DefaultCooldown = 60 * time.Second

// Option configures a Tracker.
type Option func(*Tracker)

// WithCooldown overrides the rate-limit cooldown window.
func WithCooldown(d time.Duration) Option {
	return func(t *Tracker) {
		t.cooldown = d
	}
}

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// Tracker holds the health state for one provider. One instance is shared
// by every call path of that provider; it is safe for concurrent use.
//
// Only a 429 engages the cooldown. Other failures are recorded as
// StatusError for reporting but every subsequent call still hits the
// network. Once the cooldown elapses the next call retries the network
// regardless of prior state.
type Tracker struct {
	mu          sync.Mutex
	status      Status
	lastFailure time.Time
	cooldown    time.Duration
	now         func() time.Time
}

// NewTracker creates a Tracker in the active state.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		status:   StatusActive,
		cooldown: DefaultCooldown,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ShouldSkip reports whether calls should bypass the network and go straight
// to synthetic data.
func (t *Tracker) ShouldSkip() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status == StatusRateLimited && t.now().Sub(t.lastFailure) < t.cooldown
}

// MarkRateLimited records a 429 and starts the cooldown window.
func (t *Tracker) MarkRateLimited() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusRateLimited
	t.lastFailure = t.now()
}

// MarkError records a non-429 failure. No cooldown is engaged.
func (t *Tracker) MarkError() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusError
}

// MarkSuccess resets the provider to active.
func (t *Tracker) MarkSuccess() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusActive
}

// Status returns the current health state.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}
