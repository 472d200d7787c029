// Package clock provides time sources and context-aware waiting for the polling loops.
package clock

import (
	"context"
	"time"
)

// Clock reports wall-clock time; loops take it as a dependency so tests can pin it.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real implements Clock with the time package.
type Real struct{}

// NewReal returns the process clock.
func NewReal() Real {
	return Real{}
}

// Now returns the current local time.
func (Real) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t.
func (Real) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// SleepFunc waits for a duration or until the context ends.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	At time.Time
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.At
}

// Since measures from the frozen instant.
func (f Fixed) Since(t time.Time) time.Duration {
	return f.At.Sub(t)
}
