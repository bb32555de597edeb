package service

import (
	"context"
	"time"
)

// FixedDelayThrottle waits the same interval after every submission attempt
type FixedDelayThrottle struct {
	Interval time.Duration
}

// NewFixedDelayThrottle creates a throttle with the given interval
func NewFixedDelayThrottle(interval time.Duration) *FixedDelayThrottle {
	return &FixedDelayThrottle{Interval: interval}
}

// Wait sleeps for the interval or until ctx is done
func (t *FixedDelayThrottle) Wait(ctx context.Context) error {
	if t.Interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(t.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoopThrottle never waits; dry runs use it
type NoopThrottle struct{}

// Wait returns immediately
func (NoopThrottle) Wait(ctx context.Context) error { return ctx.Err() }
