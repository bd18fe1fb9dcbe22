package scheduler

import (
	"context"
	"time"

	"retrobasic/internal/input"
)

// Native is the desktop-host Scheduler variant: Sleep parks the calling
// goroutine on a timer rather than polling, matching how a native host
// with real thread/monitor primitives is expected to wait.
type Native struct {
	base
}

// NewNative returns a Native scheduler reading keys from queue and, if
// clock is nil, using RealClock for Now.
func NewNative(queue *input.Queue, clock Clock) *Native {
	return &Native{base: newBase(queue, clock)}
}

// Sleep returns after duration/SpeedFactor real time, or ctx.Err() if
// cancelled first. A non-positive duration returns immediately.
func (n *Native) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(n.scaledDuration(d))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
