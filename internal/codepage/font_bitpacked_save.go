package codepage

import "io"

// SaveBitPacked writes cp in the same §6 bit-packed binary format
// Load reads: width byte, height byte, no header padding, then 256
// contiguous glyph rows of rowBytes(width)*height bytes each,
// big-endian bit order (bit 7 = leftmost pixel) — the exact inverse of
// decodeGlyph, so a round trip through SaveBitPacked then Load
// reproduces the same CodePage. Writing zero padding (rather than
// probing for one on read) keeps the writer side of the format simple;
// Load still accepts it since 0 is the first candidate padding probed.
func SaveBitPacked(w io.Writer, cp *CodePage) error {
	if _, err := w.Write([]byte{byte(cp.Width), byte(cp.Height)}); err != nil {
		return err
	}

	rb := rowBytes(cp.Width)
	buf := make([]byte, rb*cp.Height)
	for i := 0; i < NumGlyphs; i++ {
		g := cp.Glyphs[i]
		for i := range buf {
			buf[i] = 0
		}
		for y := 0; y < cp.Height; y++ {
			for x := 0; x < cp.Width; x++ {
				if g.At(x, y) != 0 {
					buf[y*rb+x/8] |= 1 << uint(7-x%8)
				}
			}
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
