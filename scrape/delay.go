package scrape

import (
	"context"
	"math/rand"
	"time"
)

// DelayPolicy inserts a pause before each request. News sites throttle
// aggressive clients, so scrapes pace themselves between fetches.
type DelayPolicy interface {
	// Sleep blocks for the policy's delay or until the context is done.
	Sleep(ctx context.Context) error
}

// RandomDelay sleeps for a uniformly random duration in [min, max).
type RandomDelay struct {
	Min time.Duration
	Max time.Duration
}

// NewRandomDelay creates a RandomDelay between min and max.
func NewRandomDelay(min, max time.Duration) *RandomDelay {
	return &RandomDelay{Min: min, Max: max}
}

func (d *RandomDelay) Sleep(ctx context.Context) error {
	delay := d.Min
	if d.Max > d.Min {
		delay += time.Duration(rand.Int63n(int64(d.Max - d.Min)))
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// NoDelay is a DelayPolicy that never waits. Useful in tests.
type NoDelay struct{}

func (NoDelay) Sleep(ctx context.Context) error {
	return ctx.Err()
}
