// Package clocktest provides a manually advanced [clock.Clock] for tests.
package clocktest

import (
	"sync"
	"time"
)

// Fake is a clock whose time only moves via [Fake.Advance] or by waiting
// on [Fake.After], which advances the clock by the requested duration and
// fires immediately. Safe for concurrent use.
type Fake struct {
	now   time.Time
	waits []time.Duration
	mu    sync.Mutex
}

// New returns a [Fake] starting at a fixed instant.
func New() *Fake {
	return &Fake{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// After records d, advances the clock by d, and returns a channel that has
// already fired.
func (f *Fake) After(d time.Duration) <-chan time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.waits = append(f.waits, d)
	f.now = f.now.Add(d)

	ch := make(chan time.Time, 1)
	ch <- f.now

	return ch
}

// Advance moves the clock forward by d, simulating work.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

// Waits returns every duration passed to [Fake.After], in order.
func (f *Fake) Waits() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]time.Duration(nil), f.waits...)
}
