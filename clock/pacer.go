package clock

import (
	"context"
	"time"
)

// Pacer schedules frames at fixed offsets from a start time.
//
// Create instances with [NewPacer].
type Pacer struct {
	clock Clock
	start time.Time
	delay time.Duration
}

// NewPacer creates a [Pacer] for the given delay. A nil clock uses
// [System].
func NewPacer(delay time.Duration, c Clock) *Pacer {
	if c == nil {
		c = System()
	}

	return &Pacer{clock: c, delay: delay}
}

// Delay returns the inter-frame delay.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Start records the playback start time.
func (p *Pacer) Start() {
	p.start = p.clock.Now()
}

// Elapsed returns the wall-clock time since [Pacer.Start].
func (p *Pacer) Elapsed() time.Duration {
	return p.clock.Now().Sub(p.start)
}

// Until returns how long to wait before the frame following the first n
// frames is due: n*delay - elapsed, clamped to zero.
func (p *Pacer) Until(n int) time.Duration {
	return max(0, time.Duration(n)*p.delay-p.Elapsed())
}

// Wait blocks until n frames' worth of time has passed since
// [Pacer.Start], returning early with the context's error if ctx is done.
func (p *Pacer) Wait(ctx context.Context, n int) error {
	d := p.Until(n)
	if d == 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}
