package scheduler

import (
	"context"
	"testing"
	"time"

	"retrobasic/internal/input"
)

func TestNativeSleepReturnsImmediatelyForNonPositive(t *testing.T) {
	s := NewNative(input.NewQueue(), nil)
	start := time.Now()
	if err := s.Sleep(context.Background(), 0); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if time.Since(start) > 20*time.Millisecond {
		t.Fatal("Sleep(0) should return immediately")
	}
}

func TestNativeSleepHonorsSpeedFactor(t *testing.T) {
	s := NewNative(input.NewQueue(), nil)
	s.SetSpeedFactor(4.0)
	start := time.Now()
	if err := s.Sleep(context.Background(), 40*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 5*time.Millisecond || elapsed > 100*time.Millisecond {
		t.Errorf("elapsed %v, want roughly 10ms (40ms/4)", elapsed)
	}
}

func TestNativeSleepCancelled(t *testing.T) {
	s := NewNative(input.NewQueue(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	err := s.Sleep(ctx, time.Second)
	if err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestPollingSleepElapsesApproximateDuration(t *testing.T) {
	s := NewPolling(input.NewQueue(), nil)
	start := time.Now()
	if err := s.Sleep(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if time.Since(start) < 15*time.Millisecond {
		t.Fatal("Polling.Sleep returned too early")
	}
}

func TestPollingSleepCancelled(t *testing.T) {
	s := NewPolling(input.NewQueue(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	err := s.Sleep(ctx, time.Second)
	if err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestSpeedFactorRejectsNonPositive(t *testing.T) {
	s := NewNative(input.NewQueue(), nil)
	s.SetSpeedFactor(0)
	if s.SpeedFactor() != 1.0 {
		t.Errorf("got %v, want fallback 1.0", s.SpeedFactor())
	}
	s.SetSpeedFactor(-5)
	if s.SpeedFactor() != 1.0 {
		t.Errorf("got %v, want fallback 1.0", s.SpeedFactor())
	}
}

func TestWaitForKeyDelegatesToQueue(t *testing.T) {
	q := input.NewQueue()
	s := NewNative(q, nil)
	q.Inject(input.KeyEvent{Kind: input.KeyDown, Code: input.KeyEnter})
	ev, err := s.WaitForKey(context.Background())
	if err != nil {
		t.Fatalf("WaitForKey: %v", err)
	}
	if ev.Code != input.KeyEnter {
		t.Errorf("got %v, want KeyEnter", ev.Code)
	}
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

func TestNowUsesInjectedClock(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewNative(input.NewQueue(), fakeClock{t: fixed})
	if !s.Now().Equal(fixed) {
		t.Errorf("got %v, want %v", s.Now(), fixed)
	}
}
