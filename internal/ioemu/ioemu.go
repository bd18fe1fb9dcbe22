// Package ioemu composes the framebuffer, palette, text overlay, clip and
// window rectangles, and input queue into the console's single IO
// Emulator: the public surface the BASIC API facade drives.
package ioemu

import (
	"context"
	"fmt"

	"retrobasic/internal/codepage"
	"retrobasic/internal/debug"
	"retrobasic/internal/framebuffer"
	"retrobasic/internal/input"
	"retrobasic/internal/palette"
	"retrobasic/internal/screenmode"
)

// defaultForeground and defaultBackground match classic QBASIC's COLOR 7,0
// default (light gray on black), not the palette's brightest entry —
// VGA's 256-color ramp has no single "white" at its last index the way
// the 4- and 16-entry tables do.
const (
	defaultForeground = 7
	defaultBackground = 0
)

// Rect is an inclusive screen-pixel rectangle [X1,Y1,X2,Y2].
type Rect struct {
	X1, Y1, X2, Y2 int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// windowState is the optional world-to-screen affine mapping (WINDOW).
type windowState struct {
	enabled                bool
	wx1, wy1, wx2, wy2 float64
}

// Emulator is the composed IO Emulator: framebuffer + palette + text
// cursor + clip/window + input queue + mouse state.
type Emulator struct {
	fb   *framebuffer.Framebuffer
	mode screenmode.Mode

	codePage          *codepage.CodePage
	font8x8, font8x16 *codepage.CodePage

	cursorCol, cursorRow int
	fg, bg               byte

	clip   Rect
	window windowState

	input *input.Queue

	logger debug.ComponentLogger
}

// New returns an Emulator with no mode loaded yet; LoadScreenMode must be
// called before any drawing or text operation. font8x8/font8x16 back the
// modes below/above the 8x16 cell-height boundary per the mode table.
// logger may be nil; the Emulator then logs nothing.
func New(font8x8, font8x16 *codepage.CodePage, in *input.Queue, logger *debug.Logger) *Emulator {
	return &Emulator{
		font8x8:  font8x8,
		font8x16: font8x16,
		input:    in,
		logger:   logger.For(debug.ComponentIOEmu),
	}
}

// LoadScreenMode installs ScreenMode n: a fresh index buffer, palette,
// code page, reset clip/window, cleared background, and homed cursor.
func (e *Emulator) LoadScreenMode(n int) error {
	mode, err := screenmode.Lookup(n)
	if err != nil {
		return newError(ErrUnsupportedScreenMode, "LoadScreenMode", err.Error())
	}

	e.mode = mode
	e.codePage = mode.CodePage(e.font8x8, e.font8x16)
	e.fb = framebuffer.New(mode.ResW, mode.ResH)
	e.clip = Rect{0, 0, mode.ResW - 1, mode.ResH - 1}
	e.window = windowState{}
	e.fg = defaultForeground
	e.bg = defaultBackground
	e.cursorCol, e.cursorRow = 0, 0
	e.fb.Clear(e.bg)

	e.logger.Logf(debug.LogLevelInfo, "screen mode %d loaded: %dx%d text, %dx%d pixels", n, mode.TextCols, mode.TextRows, mode.ResW, mode.ResH)
	return nil
}

// Mode returns the currently installed ScreenMode.
func (e *Emulator) Mode() screenmode.Mode { return e.mode }

// Framebuffer exposes the backing pixel surface for a host renderer.
func (e *Emulator) Framebuffer() *framebuffer.Framebuffer { return e.fb }

// Palette returns the active mode's palette.
func (e *Emulator) Palette() *palette.Palette { return e.mode.Palette }

// EnableDoubleBuffer opts the current framebuffer into back-buffer
// drawing: every PSET/LINE/PUT/CLS/BLOAD mutation after this call
// targets the back buffer until SwapBuffers makes it the front. A
// host that wants tear-free presentation of an actively-drawing
// program enables this once at startup; no BASIC statement exposes it,
// since no program in this console draws concurrently with its own
// host's renderer.
func (e *Emulator) EnableDoubleBuffer() { e.fb.EnableDoubleBuffer() }

// DoubleBuffered reports whether EnableDoubleBuffer has been called.
func (e *Emulator) DoubleBuffered() bool { return e.fb.DoubleBuffered() }

// SwapBuffers publishes the back buffer as the new front buffer. A
// host render loop calls this once it has presented the current
// front buffer, so the frame accumulated in the back buffer since the
// last swap becomes visible on the next present.
func (e *Emulator) SwapBuffers() {
	e.fb.Swap()
	e.logger.Logf(debug.LogLevelDebug, "double buffer swap")
}

// SetForeground and SetBackground set the current text/graphics default
// color indices used where a statement omits an explicit color.
func (e *Emulator) SetForeground(idx byte) { e.fg = idx }
func (e *Emulator) SetBackground(idx byte) { e.bg = idx }
func (e *Emulator) Foreground() byte       { return e.fg }
func (e *Emulator) Background() byte       { return e.bg }

// CursorPosition returns the current (col,row).
func (e *Emulator) CursorPosition() (int, int) { return e.cursorCol, e.cursorRow }

// LocateCursor moves the cursor, failing with TextOutOfRange if outside
// the current mode's text grid.
func (e *Emulator) LocateCursor(col, row int) error {
	if col < 0 || col >= e.mode.TextCols || row < 0 || row >= e.mode.TextRows {
		return newError(ErrTextOutOfRange, "LocateCursor", fmt.Sprintf("(%d,%d) outside %dx%d grid", col, row, e.mode.TextCols, e.mode.TextRows))
	}
	e.cursorCol, e.cursorRow = col, row
	return nil
}

// advanceLine moves to column 0 of the next row, scrolling when the
// bottom of the text grid is exceeded. Shared by LF, HT-wrap and the
// printable-character overflow path.
func (e *Emulator) advanceLine() {
	e.cursorCol = 0
	e.cursorRow++
	if e.cursorRow >= e.mode.TextRows {
		e.cursorRow = e.mode.TextRows - 1
		e.ScrollTextUp(1)
	}
}

// PutChar advances the cursor per the fixed control-code policy: BEL is a
// no-op, BS decrements the column without erasing, HT advances to the
// next tab stop (wrapping with scroll), LF/CR move the cursor, and any
// other byte draws a glyph and advances, wrapping with scroll at the end
// of a row.
func (e *Emulator) PutChar(code byte) {
	switch code {
	case 7: // BEL
		return
	case 8: // BS
		if e.cursorCol > 0 {
			e.cursorCol--
		}
	case 9: // HT
		next := (e.cursorCol/8 + 1) * 8
		if next >= e.mode.TextCols {
			e.advanceLine()
		} else {
			e.cursorCol = next
		}
	case 10: // LF
		e.cursorRow++
		if e.cursorRow >= e.mode.TextRows {
			e.cursorRow = e.mode.TextRows - 1
			e.ScrollTextUp(1)
		}
	case 13: // CR
		e.cursorCol = 0
	default:
		e.drawGlyphAtCell(e.cursorCol, e.cursorRow, code, e.fg, e.bg)
		e.cursorCol++
		if e.cursorCol >= e.mode.TextCols {
			e.advanceLine()
		}
	}
}

// PutString runs PutChar over each byte of s in order.
func (e *Emulator) PutString(s string) {
	for i := 0; i < len(s); i++ {
		e.PutChar(s[i])
	}
}

// WriteTextAt composes a glyph into the (col,row) text cell without
// moving the cursor, failing with TextOutOfRange on an invalid cell.
func (e *Emulator) WriteTextAt(col, row int, code byte, fg, bg byte) error {
	if col < 0 || col >= e.mode.TextCols || row < 0 || row >= e.mode.TextRows {
		return newError(ErrTextOutOfRange, "WriteTextAt", fmt.Sprintf("(%d,%d) outside %dx%d grid", col, row, e.mode.TextCols, e.mode.TextRows))
	}
	e.drawGlyphAtCell(col, row, code, fg, bg)
	return nil
}

func (e *Emulator) drawGlyphAtCell(col, row int, code byte, fg, bg byte) {
	x0 := col * e.mode.CellW
	y0 := row * e.mode.CellH
	e.DrawGlyph(e.codePage.Glyph(code), x0, y0, fg, bg)
}

// DrawGlyph rasterizes glyph at pixel origin (x0,y0): a 1 bit writes fg, a
// 0 bit writes bg, both through the clipped pixel path.
func (e *Emulator) DrawGlyph(g codepage.Glyph, x0, y0 int, fg, bg byte) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != 0 {
				e.writePixelClipped(x0+x, y0+y, fg)
			} else {
				e.writePixelClipped(x0+x, y0+y, bg)
			}
		}
	}
}

// ScrollTextUp shifts the top n*cellHeight pixel rows out of the
// framebuffer, filling the exposed band at the bottom with the current
// background index. Fails with InvalidScroll for n outside [1,textRows].
func (e *Emulator) ScrollTextUp(n int) error {
	if n < 1 || n > e.mode.TextRows {
		return newError(ErrInvalidScroll, "ScrollTextUp", fmt.Sprintf("n=%d outside [1,%d]", n, e.mode.TextRows))
	}

	shiftRows := n * e.mode.CellH
	rowBytes := e.mode.ResW
	total := e.mode.ResH

	if shiftRows >= total {
		e.fb.Clear(e.bg)
		return nil
	}

	kept, err := e.fb.ReadBytes(shiftRows*rowBytes, (total-shiftRows)*rowBytes)
	if err != nil {
		return err
	}
	if err := e.fb.WriteBytes(0, kept); err != nil {
		return err
	}

	fill := make([]byte, shiftRows*rowBytes)
	for i := range fill {
		fill[i] = e.bg
	}
	return e.fb.WriteBytes((total-shiftRows)*rowBytes, fill)
}

func (e *Emulator) writePixelClipped(x, y int, idx byte) {
	if !e.clip.contains(x, y) {
		return
	}
	e.fb.WritePixel(x, y, idx)
}

func (e *Emulator) readPixelClipped(x, y int) byte {
	if !e.clip.contains(x, y) {
		return e.bg
	}
	return e.fb.ReadPixel(x, y, e.bg)
}

// InjectKey appends ev to the input queue.
func (e *Emulator) InjectKey(ev input.KeyEvent) { e.input.Inject(ev) }

// TryReadKey pops the next key event without blocking.
func (e *Emulator) TryReadKey() (input.KeyEvent, bool) { return e.input.TryRead() }

// WaitForKey blocks cooperatively until a key event is available or ctx
// is cancelled. A cancelled ctx surfaces as ctx.Err(), which the
// interpreter's statement dispatch treats as the silent Cancelled
// termination path rather than a printed diagnostic.
func (e *Emulator) WaitForKey(ctx context.Context) (input.KeyEvent, error) {
	return e.input.WaitForKey(ctx)
}

// IsKeyDown reports whether code is currently held.
func (e *Emulator) IsKeyDown(code input.KeyCode) bool { return e.input.IsKeyDown(code) }

// SetMouseState updates the polled mouse state.
func (e *Emulator) SetMouseState(x, y int, left, right, mid bool) {
	e.input.SetMouseState(x, y, left, right, mid)
}

// MouseX, MouseY, MouseLeft, MouseRight, MouseMiddle expose the latest
// polled mouse state to the BASIC reserved names of the same shape.
func (e *Emulator) MouseX() int        { return e.input.Mouse().X }
func (e *Emulator) MouseY() int        { return e.input.Mouse().Y }
func (e *Emulator) MouseLeft() bool    { return e.input.Mouse().LeftDown }
func (e *Emulator) MouseRight() bool   { return e.input.Mouse().RightDown }
func (e *Emulator) MouseMiddle() bool  { return e.input.Mouse().Mid }
