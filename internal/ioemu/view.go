package ioemu

import "fmt"

// SetView installs the clip rectangle used by every clipped pixel
// accessor and graphics primitive, clamped to the framebuffer extents.
// Fails with InvalidView if x2<x1 or y2<y1.
func (e *Emulator) SetView(x1, y1, x2, y2 int) error {
	if x2 < x1 || y2 < y1 {
		return newError(ErrInvalidView, "SetView", fmt.Sprintf("(%d,%d)-(%d,%d) has x2<x1 or y2<y1", x1, y1, x2, y2))
	}

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	e.clip = Rect{
		X1: clamp(x1, 0, e.mode.ResW-1),
		Y1: clamp(y1, 0, e.mode.ResH-1),
		X2: clamp(x2, 0, e.mode.ResW-1),
		Y2: clamp(y2, 0, e.mode.ResH-1),
	}
	return nil
}

// ResetView restores the clip rectangle to the full screen.
func (e *Emulator) ResetView() {
	e.clip = Rect{0, 0, e.mode.ResW - 1, e.mode.ResH - 1}
}

// View returns the current clip rectangle.
func (e *Emulator) View() Rect { return e.clip }

// SetWindow enables the world-to-screen affine mapping targeting the
// current clip rect. Fails with InvalidWindow if the world rectangle is
// degenerate on either axis.
func (e *Emulator) SetWindow(wx1, wy1, wx2, wy2 float64) error {
	if wx2 == wx1 || wy2 == wy1 {
		return newError(ErrInvalidWindow, "SetWindow", fmt.Sprintf("(%g,%g)-(%g,%g) is degenerate", wx1, wy1, wx2, wy2))
	}
	e.window = windowState{enabled: true, wx1: wx1, wy1: wy1, wx2: wx2, wy2: wy2}
	return nil
}

// ResetWindow disables the world-to-screen mapping.
func (e *Emulator) ResetWindow() { e.window = windowState{} }

// WorldToScreen maps (x,y) through the active WINDOW onto the current
// clip rect, or returns (x,y) unchanged (truncated to int) when no
// window is installed.
func (e *Emulator) WorldToScreen(x, y float64) (int, int) {
	if !e.window.enabled {
		return int(x), int(y)
	}

	u := (x - e.window.wx1) / (e.window.wx2 - e.window.wx1)
	v := (y - e.window.wy1) / (e.window.wy2 - e.window.wy1)

	sx := float64(e.clip.X1) + u*float64(e.clip.X2-e.clip.X1)
	sy := float64(e.clip.Y1) + v*float64(e.clip.Y2-e.clip.Y1)

	return round(sx), round(sy)
}

func round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
