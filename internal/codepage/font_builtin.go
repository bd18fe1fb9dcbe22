package codepage

import (
	"image"

	"golang.org/x/image/font/basicfont"
)

// Builtin8x8 and Builtin8x16 are synthetic fallback code pages used
// when the console boots without a configured font file. They
// rasterize golang.org/x/image's built-in 7x13 bitmap face into the
// requested cell size so every printable ASCII code point (32-126)
// has a recognizable glyph; everything else is blank.
var (
	Builtin8x8  = buildBuiltin(8, 8)
	Builtin8x16 = buildBuiltin(8, 16)
)

func buildBuiltin(width, height int) *CodePage {
	cp := &CodePage{Name: "builtin", Width: width, Height: height}
	face := basicfont.Face7x13

	for i := 0; i < NumGlyphs; i++ {
		cp.Glyphs[i] = rasterizeRune(face, rune(i), width, height)
	}
	return cp
}

// rasterizeRune samples the source face's glyph mask for r, scaled
// (by nearest-neighbor) into a width x height 0/1 bitmap. Runes
// outside the face's covered ranges render blank.
func rasterizeRune(face *basicfont.Face, r rune, width, height int) Glyph {
	bitmap := make([]byte, width*height)

	rect, ok := glyphRect(face, r)
	if ok {
		srcW := rect.Dx()
		srcH := rect.Dy()
		for y := 0; y < height; y++ {
			sy := rect.Min.Y + y*srcH/height
			for x := 0; x < width; x++ {
				sx := rect.Min.X + x*srcW/width
				_, _, _, a := face.Mask.At(sx, sy).RGBA()
				if a != 0 {
					bitmap[y*width+x] = 1
				}
			}
		}
	}

	return Glyph{Width: width, Height: height, Bitmap: bitmap}
}

// glyphRect finds the sub-rectangle of face.Mask holding rune r's
// bitmap, mirroring how basicfont.Face.Glyph locates glyphs via its
// Ranges table.
func glyphRect(face *basicfont.Face, r rune) (image.Rectangle, bool) {
	for _, rg := range face.Ranges {
		if r >= rg.Low && r < rg.High {
			offset := rg.Offset + int(r-rg.Low)
			x0 := offset * face.Width
			return image.Rect(x0, 0, x0+face.Width, face.Height), true
		}
	}
	return image.Rectangle{}, false
}
