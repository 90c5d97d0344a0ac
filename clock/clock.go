// Package clock derives inter-frame delays and paces playback against the
// wall clock.
//
// [Pacer] targets each frame's scheduled timestamp (start + n*delay) rather
// than sleeping a fixed delay per frame, so time spent decoding and drawing
// does not accumulate into drift over long playback.
package clock

import "time"

// DefaultFPS is the frame rate used when neither an override nor a source
// rate is known.
const DefaultFPS = 24

// Delay returns the inter-frame delay for the given frame rates. The
// override wins when positive, then the source rate, then [DefaultFPS].
func Delay(override, source float64) time.Duration {
	fps := float64(DefaultFPS)

	switch {
	case override > 0:
		fps = override
	case source > 0:
		fps = source
	}

	return time.Duration(float64(time.Second) / fps)
}

// Clock is the time source used by [Pacer].
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// System returns a [Clock] backed by package time.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
