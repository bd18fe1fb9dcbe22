// Package lineeditor implements interactive line editing over the IO
// Emulator's text overlay, used by the BASIC LINE INPUT statement: a
// blinking caret, insert/delete/navigation, and cooperative cancellation
// driven entirely through the scheduler's suspension points.
package lineeditor

import (
	"context"
	"time"

	"retrobasic/internal/input"
	"retrobasic/internal/ioemu"
	"retrobasic/internal/scheduler"
)

// Options configures one ReadLine call. The zero value is not usable
// directly; call DefaultOptions to get sensible defaults to override.
type Options struct {
	Blink     bool
	BlinkMS   int
	MaxLength int
}

// DefaultOptions matches spec.md §4.3: a visible 400ms caret blink and a
// 255-character maximum buffer.
func DefaultOptions() Options {
	return Options{Blink: true, BlinkMS: 400, MaxLength: 255}
}

// pollInterval is how often ReadLine polls the input queue when no event
// is pending, matching spec.md's "~20ms" cooperative sleep.
const pollInterval = 20 * time.Millisecond

// Editor drives ReadLine over an Emulator's text overlay using sched for
// every suspension point (blink timing and the idle poll sleep).
type Editor struct {
	emu   *ioemu.Emulator
	sched scheduler.Scheduler
}

// New returns an Editor rendering into emu and suspending through sched.
func New(emu *ioemu.Emulator, sched scheduler.Scheduler) *Editor {
	return &Editor{emu: emu, sched: sched}
}

// ReadLine writes prompt at the current cursor, then edits a line over
// the remainder of that row until Enter (returns the buffer), Escape
// (returns "" without error), or ctx cancellation (returns ctx.Err()).
func (ed *Editor) ReadLine(ctx context.Context, prompt string, opts Options) (string, error) {
	ed.emu.PutString(prompt)

	startCol, row := ed.emu.CursorPosition()
	cols := ed.emu.Mode().TextCols
	editableCols := cols - startCol
	if editableCols < 0 {
		editableCols = 0
	}

	maxLen := opts.MaxLength
	if editableCols < maxLen {
		maxLen = editableCols
	}
	if maxLen < 0 {
		maxLen = 0
	}

	fg, bg := ed.emu.Foreground(), ed.emu.Background()

	var buf []rune
	caret := 0
	caretVisible := true
	lastBlink := ed.sched.Now()

	render := func() {
		for i := 0; i < editableCols; i++ {
			col := startCol + i
			ch := byte(' ')
			if i < len(buf) {
				ch = byte(buf[i])
			}
			cellFg, cellBg := fg, bg
			if opts.Blink && caretVisible && i == caret {
				cellFg, cellBg = bg, fg
			}
			ed.emu.WriteTextAt(col, row, ch, cellFg, cellBg)
		}
	}
	render()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if opts.Blink {
			blinkMS := opts.BlinkMS
			if blinkMS <= 0 {
				blinkMS = 400
			}
			if ed.sched.Now().Sub(lastBlink) >= time.Duration(blinkMS)*time.Millisecond {
				caretVisible = !caretVisible
				lastBlink = ed.sched.Now()
				render()
			}
		}

		ev, ok := ed.emu.TryReadKey()
		if !ok {
			if err := ed.sched.Sleep(ctx, pollInterval); err != nil {
				return "", err
			}
			continue
		}
		if ev.Kind != input.KeyDown {
			continue
		}

		switch ev.Code {
		case input.KeyEnter:
			ed.emu.LocateCursor(startCol, row)
			ed.emu.PutChar(13)
			ed.emu.PutChar(10)
			return string(buf), nil

		case input.KeyEscape:
			buf = buf[:0]
			caret = 0
			render()
			return "", nil

		case input.KeyBackspace:
			if caret > 0 {
				buf = append(buf[:caret-1], buf[caret:]...)
				caret--
				render()
			}

		case input.KeyDelete:
			if caret < len(buf) {
				buf = append(buf[:caret], buf[caret+1:]...)
				render()
			}

		case input.KeyLeft:
			if caret > 0 {
				caret--
				render()
			}

		case input.KeyRight:
			if caret < len(buf) {
				caret++
				render()
			}

		case input.KeyHome:
			caret = 0
			render()

		case input.KeyEnd:
			caret = len(buf)
			render()

		default:
			if ev.Char != 0 && ev.Char >= 0x20 && len(buf) < maxLen {
				buf = append(buf[:caret], append([]rune{ev.Char}, buf[caret:]...)...)
				caret++
				render()
			}
		}
	}
}
