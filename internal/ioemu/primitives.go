package ioemu

import "fmt"

// RasterOp names the combine rule PutBlock applies between a source byte
// and the byte already stored in the framebuffer.
type RasterOp int

const (
	OpPSET RasterOp = iota
	OpAND
	OpOR
	OpXOR
)

// ImageBlock is a captured rectangle of palette indices, as produced by
// GetBlock and consumed by PutBlock.
type ImageBlock struct {
	Width, Height int
	Pixels        []byte
}

func (b ImageBlock) at(x, y int) byte { return b.Pixels[y*b.Width+x] }

// PSet writes color at (x,y) through the clipped pixel path.
func (e *Emulator) PSet(x, y int, color byte) {
	e.writePixelClipped(x, y, color)
}

// Point returns the index at (x,y), or the current background index if
// (x,y) is outside the framebuffer bounds or the active clip rect.
func (e *Emulator) Point(x, y int) byte {
	return e.readPixelClipped(x, y)
}

// Line draws the integer Bresenham diagonal between (x1,y1) and (x2,y2)
// inclusive of both endpoints, through the clipped pixel path.
func (e *Emulator) Line(x1, y1, x2, y2 int, color byte) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		e.writePixelClipped(x, y, color)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GetBlock captures a w*h rectangle of indices from the framebuffer
// starting at (x,y). Source cells outside the framebuffer bounds are
// recorded as index 0, not clipped to the current VIEW — GET reads raw
// VRAM, it is not a drawing primitive.
func (e *Emulator) GetBlock(x, y, w, h int) (ImageBlock, error) {
	if w <= 0 || h <= 0 {
		return ImageBlock{}, newError(ErrInvalidBlock, "GetBlock", fmt.Sprintf("invalid size %dx%d", w, h))
	}

	pixels := make([]byte, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			pixels[row*w+col] = e.fb.ReadPixel(x+col, y+row, 0)
		}
	}
	return ImageBlock{Width: w, Height: h, Pixels: pixels}, nil
}

// PutBlock stamps block at (x,y) combining its bytes with the stored
// framebuffer bytes according to op. Every write goes through the
// clipped pixel path; destination cells outside bounds/clip are skipped.
func (e *Emulator) PutBlock(x, y int, block ImageBlock, op RasterOp) error {
	if block.Width <= 0 || block.Height <= 0 {
		return newError(ErrInvalidBlock, "PutBlock", fmt.Sprintf("invalid size %dx%d", block.Width, block.Height))
	}

	for row := 0; row < block.Height; row++ {
		for col := 0; col < block.Width; col++ {
			dx, dy := x+col, y+row
			src := block.at(col, row)

			var result byte
			switch op {
			case OpPSET:
				result = src
			case OpAND:
				result = e.readPixelClipped(dx, dy) & src
			case OpOR:
				result = e.readPixelClipped(dx, dy) | src
			case OpXOR:
				result = e.readPixelClipped(dx, dy) ^ src
			default:
				return newError(ErrInvalidBlock, "PutBlock", fmt.Sprintf("unknown raster op %d", op))
			}
			e.writePixelClipped(dx, dy, result)
		}
	}
	return nil
}
