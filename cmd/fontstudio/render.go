package main

import (
	"image"
	"image/color"

	"retrobasic/internal/codepage"
	"retrobasic/internal/palette"
)

const (
	sheetCols = 16
	sheetRows = 16

	editorMaxPx = 384
	sheetMaxPx  = 512
)

// cellPx computes an integer cell size so glyphW*cellPx stays within maxPx,
// the same no-fractional-scaling approach the sprite editor used for its
// canvas and preview panes.
func cellPx(glyphW, glyphH, maxPx int) int {
	if glyphW < 1 {
		glyphW = 1
	}
	if glyphH < 1 {
		glyphH = 1
	}
	largest := glyphW
	if glyphH > largest {
		largest = glyphH
	}
	cell := maxPx / largest
	if cell < 1 {
		cell = 1
	}
	return cell
}

// colorOf converts a palette entry to Fyne's NRGBA color, falling back to
// opaque black for an out-of-range index rather than panicking.
func colorOf(pal *palette.Palette, index int) color.NRGBA {
	if pal == nil {
		return color.NRGBA{A: 0xFF}
	}
	c, err := pal.Get(index)
	if err != nil {
		return color.NRGBA{A: 0xFF}
	}
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// renderGlyphEditorImage draws one glyph scaled up to cell blocks, with an
// optional grid overlay and a highlighted hover cell, the editor-pane
// counterpart of the sprite editor's zoomed canvas.
func renderGlyphEditorImage(g codepage.Glyph, fg, bg color.NRGBA, cell int, hoverX, hoverY int, drawGrid bool) image.Image {
	if cell < 1 {
		cell = 1
	}
	w := g.Width * cell
	h := g.Height * cell
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	gridColor := color.NRGBA{R: 0x2E, G: 0x33, B: 0x3E, A: 0xFF}
	hoverColor := color.NRGBA{R: 0xF9, G: 0xFB, B: 0xFF, A: 0xFF}

	gridThick := 0
	if drawGrid && cell >= 4 {
		gridThick = 1
	}
	hoverBorder := gridThick + 1
	if hoverBorder < 2 {
		hoverBorder = 2
	}

	for py := 0; py < h; py++ {
		sy := py / cell
		by := py % cell
		for px := 0; px < w; px++ {
			sx := px / cell
			bx := px % cell

			c := bg
			if sx < g.Width && sy < g.Height && g.At(sx, sy) != 0 {
				c = fg
			}
			if gridThick > 0 && (bx < gridThick || by < gridThick) {
				c = gridColor
			}
			if sx == hoverX && sy == hoverY {
				if bx < hoverBorder || by < hoverBorder || bx >= cell-hoverBorder || by >= cell-hoverBorder {
					c = hoverColor
				}
			}

			off := py*img.Stride + px*4
			img.Pix[off] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = c.A
		}
	}
	return img
}

// renderGlyphSheetImage draws all 256 glyphs of cp as a 16x16 tile grid at
// cell-pixel resolution, highlighting the selected glyph's cell border,
// the sheet-pane counterpart of the sprite editor's preview render.
func renderGlyphSheetImage(cp *codepage.CodePage, fg, bg color.NRGBA, cell, selected int) image.Image {
	if cell < 1 {
		cell = 1
	}
	tileW := cp.Width * cell
	tileH := cp.Height * cell
	w := tileW * sheetCols
	h := tileH * sheetRows
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	selColor := color.NRGBA{R: 0xF9, G: 0xC5, B: 0x4B, A: 0xFF}

	for row := 0; row < sheetRows; row++ {
		for col := 0; col < sheetCols; col++ {
			glyphIdx := row*sheetCols + col
			g := cp.Glyphs[glyphIdx]
			originX := col * tileW
			originY := row * tileH
			selected := glyphIdx == selected

			for py := 0; py < tileH; py++ {
				sy := py / cell
				for px := 0; px < tileW; px++ {
					sx := px / cell

					c := bg
					if sx < g.Width && sy < g.Height && g.At(sx, sy) != 0 {
						c = fg
					}
					if selected && (px == 0 || py == 0 || px == tileW-1 || py == tileH-1) {
						c = selColor
					}

					off := (originY+py)*img.Stride + (originX+px)*4
					img.Pix[off] = c.R
					img.Pix[off+1] = c.G
					img.Pix[off+2] = c.B
					img.Pix[off+3] = c.A
				}
			}
		}
	}
	return img
}

// renderPaletteSheetImage draws every entry of pal as a grid of chip-sized
// squares, cols wide, highlighting the selected index's border the same
// way renderGlyphSheetImage highlights the selected glyph.
func renderPaletteSheetImage(pal *palette.Palette, cols, chip, selected int) image.Image {
	if cols < 1 {
		cols = 1
	}
	if chip < 1 {
		chip = 1
	}
	n := pal.Len()
	rows := (n + cols - 1) / cols
	if rows < 1 {
		rows = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, cols*chip, rows*chip))
	selColor := color.NRGBA{R: 0xF9, G: 0xC5, B: 0x4B, A: 0xFF}

	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols
		base := colorOf(pal, i)
		originX := col * chip
		originY := row * chip
		for py := 0; py < chip; py++ {
			for px := 0; px < chip; px++ {
				c := base
				if i == selected && (px == 0 || py == 0 || px == chip-1 || py == chip-1) {
					c = selColor
				}
				off := (originY+py)*img.Stride + (originX+px)*4
				img.Pix[off] = c.R
				img.Pix[off+1] = c.G
				img.Pix[off+2] = c.B
				img.Pix[off+3] = c.A
			}
		}
	}
	return img
}
