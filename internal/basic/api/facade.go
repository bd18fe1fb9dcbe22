// Package api implements the BASIC API Facade (spec.md §4.8): a thin
// dispatch layer mapping BASIC statements onto IO Emulator, Scheduler,
// and Sound driver calls, with PrintHook/KeyHook test-harness
// callbacks.
package api

import (
	"context"
	"io"
	"time"

	"retrobasic/internal/ioemu"
	"retrobasic/internal/input"
	"retrobasic/internal/scheduler"
	"retrobasic/internal/sound"
)

// PrintHook is invoked with every string PRINT writes to the overlay,
// before it reaches the screen — a test-harness seam so interpreter
// tests can capture output without a rendered framebuffer.
type PrintHook func(s string)

// KeyHook is invoked with every key event WaitKey returns and every
// key-down event Inkey consumes (Inkey discards key-up events without
// calling it), mirroring PrintHook's test-harness role on the input
// side (an addition beyond spec.md's PrintHook-only facade).
type KeyHook func(ev input.KeyEvent)

// Facade bundles the three collaborators a running BASIC program
// drives: the IO Emulator (display+input), the Scheduler
// (SLEEP/speed factor), and a Sound driver (BEEP/SOUND/PLAY).
type Facade struct {
	Emu   *ioemu.Emulator
	Sched scheduler.Scheduler
	Sound sound.Driver

	PrintHook PrintHook
	KeyHook   KeyHook
}

// New returns a Facade dispatching onto emu, sched, and snd.
func New(emu *ioemu.Emulator, sched scheduler.Scheduler, snd sound.Driver) *Facade {
	return &Facade{Emu: emu, Sched: sched, Sound: snd}
}

// Print writes s to the text overlay, calling PrintHook first if set.
func (f *Facade) Print(s string) {
	if f.PrintHook != nil {
		f.PrintHook(s)
	}
	f.Emu.PutString(s)
}

// Cls blanks the screen by writing a space in the current foreground/
// background colors to every text cell, then homes the cursor; the
// emulator exposes no direct CLS primitive.
func (f *Facade) Cls() {
	mode := f.Emu.Mode()
	fg, bg := f.Emu.Foreground(), f.Emu.Background()
	for row := 0; row < mode.TextRows; row++ {
		for col := 0; col < mode.TextCols; col++ {
			f.Emu.WriteTextAt(col, row, ' ', fg, bg)
		}
	}
	f.Emu.LocateCursor(0, 0)
}

func (f *Facade) Locate(row, col int) error { return f.Emu.LocateCursor(col, row) }

func (f *Facade) SetColor(fg, bg int) {
	f.Emu.SetForeground(byte(fg))
	if bg >= 0 {
		f.Emu.SetBackground(byte(bg))
	}
}

func (f *Facade) SetScreenMode(n int) error { return f.Emu.LoadScreenMode(n) }

func (f *Facade) PSet(x, y, color int) { f.Emu.PSet(x, y, byte(color)) }

func (f *Facade) Point(x, y int) int { return int(f.Emu.Point(x, y)) }

func (f *Facade) Line(x1, y1, x2, y2, color int) { f.Emu.Line(x1, y1, x2, y2, byte(color)) }

func (f *Facade) GetBlock(x, y, w, h int) (ioemu.ImageBlock, error) {
	return f.Emu.GetBlock(x, y, w, h)
}

func (f *Facade) PutBlock(x, y int, block ioemu.ImageBlock, op ioemu.RasterOp) error {
	return f.Emu.PutBlock(x, y, block, op)
}

func (f *Facade) SaveImage(w io.Writer, offset, length int) error {
	return f.Emu.SaveImage(w, offset, length)
}

func (f *Facade) LoadImage(r io.Reader, offset, length int) error {
	return f.Emu.LoadImage(r, offset, length)
}

func (f *Facade) Beep(ctx context.Context) error { return f.Sound.Beep(ctx) }

func (f *Facade) SoundTone(ctx context.Context, freqHz, durationMS int) error {
	return f.Sound.PlayTone(ctx, freqHz, durationMS)
}

func (f *Facade) PlayMusic(ctx context.Context, musicStr string) error {
	return f.Sound.PlayMusicString(ctx, musicStr)
}

// Sleep blocks for seconds (fractional) scaled by the scheduler's speed
// factor, or until ctx is cancelled.
func (f *Facade) Sleep(ctx context.Context, seconds float64) error {
	return f.Sched.Sleep(ctx, time.Duration(seconds*float64(time.Second)))
}

// WaitKey blocks for the next key event, matching the emulator's
// wait_for_key suspension point.
func (f *Facade) WaitKey(ctx context.Context) (input.KeyEvent, error) {
	ev, err := f.Emu.WaitForKey(ctx)
	if err == nil && f.KeyHook != nil {
		f.KeyHook(ev)
	}
	return ev, err
}

// Inkey returns the next pending key as INKEY$ would: "" if the queue
// is empty, a single character for printable keys, or one of the
// control-code escapes for Backspace/Enter/Tab/Escape.
func (f *Facade) Inkey() string {
	ev, ok := f.Emu.TryReadKey()
	if !ok || ev.Kind != input.KeyDown {
		return ""
	}
	if f.KeyHook != nil {
		f.KeyHook(ev)
	}
	switch ev.Code {
	case input.KeyBackspace:
		return "\b"
	case input.KeyEnter:
		return "\n"
	case input.KeyTab:
		return "\t"
	case input.KeyEscape:
		return "\x1B"
	}
	if ev.Char != 0 {
		return string(ev.Char)
	}
	return ""
}

func (f *Facade) MouseX() int      { return f.Emu.MouseX() }
func (f *Facade) MouseY() int      { return f.Emu.MouseY() }
func (f *Facade) MouseLeft() bool  { return f.Emu.MouseLeft() }
func (f *Facade) MouseRight() bool { return f.Emu.MouseRight() }
func (f *Facade) MouseMiddle() bool { return f.Emu.MouseMiddle() }

func (f *Facade) KeyDown(code input.KeyCode) bool { return f.Emu.IsKeyDown(code) }

// Timer returns seconds elapsed since local midnight, matching TIMER.
func (f *Facade) Timer() float64 {
	now := f.Sched.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return now.Sub(midnight).Seconds()
}

// TimeString returns TIME$'s "HH:MM:SS" form.
func (f *Facade) TimeString() string { return f.Sched.Now().Format("15:04:05") }

// DateString returns DATE$'s "MM-DD-YYYY" form.
func (f *Facade) DateString() string { return f.Sched.Now().Format("01-02-2006") }
