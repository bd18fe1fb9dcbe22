package codepage

import "testing"

// buildFontPayload packs a width x height font of n glyphs with the
// given padding, following the §6 binary layout.
func buildFontPayload(width, height, pad, n int) []byte {
	rb := rowBytes(width)
	data := make([]byte, 2+pad+n*rb*height)
	data[0] = byte(width)
	data[1] = byte(height)
	return data
}

func TestLoadBitPackedProbesPadding(t *testing.T) {
	data := buildFontPayload(8, 8, 6, 256)
	// Glyph 1: set the top-left pixel (bit 7 of row 0).
	offset := 2 + 6 + 1*8
	data[offset] = 0x80

	cp, err := BitPacked.Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cp.Width != 8 || cp.Height != 8 {
		t.Fatalf("geometry = %dx%d, want 8x8", cp.Width, cp.Height)
	}
	if cp.Glyphs[1].At(0, 0) != 1 {
		t.Errorf("glyph 1 top-left pixel = %d, want 1", cp.Glyphs[1].At(0, 0))
	}
	if cp.Glyphs[1].At(1, 0) != 0 {
		t.Errorf("glyph 1 (1,0) pixel = %d, want 0", cp.Glyphs[1].At(1, 0))
	}
}

func TestLoadBitPackedFallbackFloorsCount(t *testing.T) {
	// Truncate a 200-glyph stream by 3 bytes: 12797 remaining bytes at
	// every candidate padding leave a remainder mod 64, so no padding
	// probes clean and the fallback floors the glyph count instead.
	data := make([]byte, 2+12797)
	data[0] = 8
	data[1] = 8

	cp, err := BitPacked.Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cp.Glyphs[198].Width != 8 {
		t.Fatalf("expected glyph 198 to be populated")
	}
	// Glyphs beyond the floored count must be blank, not out of range.
	for _, b := range cp.Glyphs[255].Bitmap {
		if b != 0 {
			t.Fatalf("expected trailing glyph to be blank")
		}
	}
}

func TestCodePageValidateInvariant(t *testing.T) {
	cp := Builtin8x8
	if err := cp.validate(); err != nil {
		t.Fatalf("builtin 8x8 font fails invariant: %v", err)
	}
}
