// Package input implements the console's keyboard/mouse input model:
// an event-typed FIFO queue, a held-key set derived from Down/Up
// events, and a polled mouse state. It is the sole concurrent
// touchpoint between the host (producer) and the interpreter
// (consumer), guarded by a mutex per spec.md §5.
package input

import (
	"context"
	"sync"
)

// EventKind distinguishes key-down from key-up events.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
)

// KeyCode enumerates the keys the console recognizes. Values below
// 256 alias the ASCII/control code they produce when held alone;
// named codes above that cover keys with no natural character.
type KeyCode int

const (
	KeyEnter     KeyCode = 13
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEscape    KeyCode = 27
)

const (
	KeyLeft KeyCode = 0x100 + iota
	KeyRight
	KeyUpArrow
	KeyDownArrow
	KeyHome
	KeyEnd
	KeyDelete
	KeyInsert
	KeyF1
)

// Modifiers captures the shift/ctrl/alt state accompanying a key
// event.
type Modifiers struct {
	Shift, Ctrl, Alt bool
}

// KeyEvent is one entry in the input FIFO.
type KeyEvent struct {
	Kind      EventKind
	Code      KeyCode
	Char      rune // 0 if the key produces no character
	Modifiers Modifiers
}

// MouseState is the latest polled pointer/button state. Per spec.md
// §9 open questions, the host is expected to update this at each UI
// tick rather than enqueue discrete mouse events: programs observe
// the latest state, not a history.
type MouseState struct {
	X, Y                     int
	LeftDown, RightDown, Mid bool
}

// Queue is the FIFO of key events plus derived held-key set and mouse
// state, safe for one producer (the host) and one consumer (the
// interpreter).
type Queue struct {
	mu      sync.Mutex
	events  []KeyEvent
	held    map[KeyCode]bool
	mouse   MouseState
	waiters []chan struct{}

	// hostPoll is an optional fallback consulted by TryRead when the
	// internal FIFO is empty, e.g. to bridge a host-native event pump
	// that doesn't pre-populate the queue.
	hostPoll func() (KeyEvent, bool)
}

// NewQueue returns an empty input queue.
func NewQueue() *Queue {
	return &Queue{held: make(map[KeyCode]bool)}
}

// SetHostPoll installs the optional fallback event source consulted
// by TryRead after the internal FIFO is exhausted.
func (q *Queue) SetHostPoll(fn func() (KeyEvent, bool)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.hostPoll = fn
}

// Inject appends ev to the FIFO, updates the held-key set, and wakes
// any goroutine blocked in WaitForKey.
func (q *Queue) Inject(ev KeyEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	switch ev.Kind {
	case KeyDown:
		q.held[ev.Code] = true
	case KeyUp:
		delete(q.held, ev.Code)
	}
	waiters := q.waiters
	q.waiters = nil
	q.mu.Unlock()

	for _, w := range waiters {
		close(w)
	}
}

// TryRead pops the head of the FIFO, falling back to the host poll
// callback if the queue is empty. It never blocks.
func (q *Queue) TryRead() (KeyEvent, bool) {
	q.mu.Lock()
	if len(q.events) > 0 {
		ev := q.events[0]
		q.events = q.events[1:]
		q.mu.Unlock()
		return ev, true
	}
	hostPoll := q.hostPoll
	q.mu.Unlock()

	if hostPoll != nil {
		if ev, ok := hostPoll(); ok {
			return ev, true
		}
	}
	return KeyEvent{}, false
}

// WaitForKey blocks cooperatively until a key event is available or
// ctx is cancelled.
func (q *Queue) WaitForKey(ctx context.Context) (KeyEvent, error) {
	for {
		if ev, ok := q.TryRead(); ok {
			return ev, nil
		}

		wake := make(chan struct{})
		q.mu.Lock()
		// Re-check under the lock in case Inject ran between TryRead
		// and registering the waiter.
		if len(q.events) > 0 {
			q.mu.Unlock()
			continue
		}
		q.waiters = append(q.waiters, wake)
		q.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return KeyEvent{}, ctx.Err()
		}
	}
}

// IsKeyDown reports whether code is currently in the held-key set.
func (q *Queue) IsKeyDown(code KeyCode) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.held[code]
}

// SetMouseState updates the polled mouse state.
func (q *Queue) SetMouseState(x, y int, left, right, mid bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.mouse = MouseState{X: x, Y: y, LeftDown: left, RightDown: right, Mid: mid}
}

// Mouse returns a copy of the latest mouse state.
func (q *Queue) Mouse() MouseState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.mouse
}
