package scheduler

import (
	"context"
	"time"

	"retrobasic/internal/input"
)

// pollSlice is the granularity Polling checks for cancellation and
// re-reads real elapsed time at, on hosts without a monitor/timer wait
// (e.g. a browser WASM host single-stepped from a requestAnimationFrame
// loop).
const pollSlice = 5 * time.Millisecond

// Polling is the constrained-host Scheduler variant: Sleep repeatedly
// checks elapsed wall time in short slices instead of blocking on a
// timer channel.
type Polling struct {
	base
}

// NewPolling returns a Polling scheduler reading keys from queue and, if
// clock is nil, using RealClock for Now.
func NewPolling(queue *input.Queue, clock Clock) *Polling {
	return &Polling{base: newBase(queue, clock)}
}

// Sleep returns after duration/SpeedFactor real time has elapsed,
// polling in pollSlice increments, or ctx.Err() if cancelled first. A
// non-positive duration returns immediately.
func (p *Polling) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	deadline := time.Now().Add(p.scaledDuration(d))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}

		slice := pollSlice
		if remaining < slice {
			slice = remaining
		}

		select {
		case <-time.After(slice):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
