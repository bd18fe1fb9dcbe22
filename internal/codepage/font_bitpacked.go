package codepage

import "fmt"

// candidatePaddings are the header padding sizes (in bytes) the format
// in spec.md §6 may use between the width/height bytes and the first
// glyph row, in probe order.
var candidatePaddings = []int{0, 6, 8, 12, 14, 16, 18, 20, 24, 28, 32}

// bitPackedLoader is the reference FontLoader for the §6 binary font
// format: byte width, byte height, a probed header pad, then
// contiguous glyph rows of ceil(width/8) bytes each, big-endian bit
// order (bit 7 = leftmost pixel).
type bitPackedLoader struct{}

// BitPacked is the reference implementation of FontLoader for the
// bit-packed font binary format described in spec.md §6.
var BitPacked FontLoader = bitPackedLoader{}

func rowBytes(width int) int {
	return (width + 7) / 8
}

func (bitPackedLoader) Load(data []byte) (*CodePage, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("codepage: font payload too short: %d bytes", len(data))
	}

	width := int(data[0])
	height := int(data[1])
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("codepage: invalid font geometry %dx%d", width, height)
	}

	glyphBytes := rowBytes(width) * height
	if glyphBytes <= 0 {
		return nil, fmt.Errorf("codepage: invalid glyph size for %dx%d font", width, height)
	}

	pad, count, ok := probeHeader(data, glyphBytes)
	if !ok {
		// Fallback: floor the glyph count from whatever bytes remain
		// after the smallest padding, accepting a truncated payload.
		pad = candidatePaddings[0]
		remaining := len(data) - 2 - pad
		if remaining < glyphBytes {
			return nil, fmt.Errorf("codepage: font payload has no complete glyphs")
		}
		count = remaining / glyphBytes
	}

	cp := &CodePage{Name: "loaded", Width: width, Height: height}
	offset := 2 + pad
	for i := 0; i < NumGlyphs; i++ {
		if i < count {
			cp.Glyphs[i] = decodeGlyph(data[offset+i*glyphBytes:offset+(i+1)*glyphBytes], width, height)
		} else {
			cp.Glyphs[i] = blankGlyph(width, height)
		}
	}

	if err := cp.validate(); err != nil {
		return nil, err
	}
	return cp, nil
}

// probeHeader finds the smallest padding (from candidatePaddings) for
// which the remaining stream size is an exact multiple of glyphBytes
// and yields between 128 and 1024 glyphs.
func probeHeader(data []byte, glyphBytes int) (pad, count int, ok bool) {
	for _, p := range candidatePaddings {
		remaining := len(data) - 2 - p
		if remaining <= 0 || remaining%glyphBytes != 0 {
			continue
		}
		n := remaining / glyphBytes
		if n >= 128 && n <= 1024 {
			return p, n, true
		}
	}
	return 0, 0, false
}

func decodeGlyph(rows []byte, width, height int) Glyph {
	bitmap := make([]byte, width*height)
	rb := rowBytes(width)
	for y := 0; y < height; y++ {
		rowStart := y * rb
		for x := 0; x < width; x++ {
			byteIdx := rowStart + x/8
			bitIdx := 7 - uint(x%8)
			if byteIdx < len(rows) && (rows[byteIdx]>>bitIdx)&1 != 0 {
				bitmap[y*width+x] = 1
			}
		}
	}
	return Glyph{Width: width, Height: height, Bitmap: bitmap}
}

func blankGlyph(width, height int) Glyph {
	return Glyph{Width: width, Height: height, Bitmap: make([]byte, width*height)}
}
