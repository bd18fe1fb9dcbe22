package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// gridOverlay is a transparent widget stacked on top of a canvas.Image
// that turns pointer taps and drags into (x,y) cell coordinates, adapted
// from the sprite editor's paint overlay: one instance picks a glyph out
// of the 16x16 sheet, another toggles pixels in the zoomed glyph editor.
type gridOverlay struct {
	widget.BaseWidget
	onStrokeStart func()
	onStrokeEnd   func()
	onPaint       func(x, y int)
	onHover       func(x, y int)
	onHoverOut    func()
	strokeActive  bool
	gridW         int
	gridH         int
}

func newGridOverlay(
	gridW, gridH int,
	onStrokeStart func(),
	onStrokeEnd func(),
	onPaint func(x, y int),
	onHover func(x, y int),
	onHoverOut func(),
) *gridOverlay {
	o := &gridOverlay{
		onStrokeStart: onStrokeStart,
		onStrokeEnd:   onStrokeEnd,
		onPaint:       onPaint,
		onHover:       onHover,
		onHoverOut:    onHoverOut,
		gridW:         gridW,
		gridH:         gridH,
	}
	o.ExtendBaseWidget(o)
	return o
}

func (o *gridOverlay) SetGrid(w, h int) {
	o.gridW = w
	o.gridH = h
}

func (o *gridOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (o *gridOverlay) beginStroke() {
	if o.strokeActive {
		return
	}
	o.strokeActive = true
	if o.onStrokeStart != nil {
		o.onStrokeStart()
	}
}

func (o *gridOverlay) endStroke() {
	if !o.strokeActive {
		return
	}
	o.strokeActive = false
	if o.onStrokeEnd != nil {
		o.onStrokeEnd()
	}
}

// cellAt converts a widget-local position into a grid cell by the ratio
// of the position within the widget's current size, the same resolution-
// independent conversion the sprite editor used so the overlay doesn't
// need to track its own cell pixel size.
func (o *gridOverlay) cellAt(pos fyne.Position) (int, int, bool) {
	sz := o.Size()
	if sz.Width <= 0 || sz.Height <= 0 || o.gridW <= 0 || o.gridH <= 0 {
		return 0, 0, false
	}
	if pos.X < 0 || pos.Y < 0 || pos.X >= sz.Width || pos.Y >= sz.Height {
		return 0, 0, false
	}
	x := int((pos.X * float32(o.gridW)) / sz.Width)
	y := int((pos.Y * float32(o.gridH)) / sz.Height)
	if x < 0 || x >= o.gridW || y < 0 || y >= o.gridH {
		return 0, 0, false
	}
	return x, y, true
}

func (o *gridOverlay) paintAt(pos fyne.Position) {
	x, y, ok := o.cellAt(pos)
	if !ok {
		return
	}
	if o.onPaint != nil {
		o.onPaint(x, y)
	}
}

func (o *gridOverlay) hoverAt(pos fyne.Position) {
	x, y, ok := o.cellAt(pos)
	if !ok {
		if o.onHoverOut != nil {
			o.onHoverOut()
		}
		return
	}
	if o.onHover != nil {
		o.onHover(x, y)
	}
}

func (o *gridOverlay) Tapped(ev *fyne.PointEvent) {
	o.beginStroke()
	o.paintAt(ev.Position)
	o.endStroke()
}

func (o *gridOverlay) TappedSecondary(*fyne.PointEvent) {}

func (o *gridOverlay) Dragged(ev *fyne.DragEvent) {
	o.beginStroke()
	o.paintAt(ev.Position)
}

func (o *gridOverlay) DragEnd() {
	o.endStroke()
}

func (o *gridOverlay) MouseIn(ev *desktop.MouseEvent) {
	o.hoverAt(ev.Position)
}

func (o *gridOverlay) MouseMoved(ev *desktop.MouseEvent) {
	o.hoverAt(ev.Position)
}

func (o *gridOverlay) MouseOut() {
	if o.onHoverOut != nil {
		o.onHoverOut()
	}
}
