package codepage

import (
	"bytes"
	"testing"
)

func TestSaveBitPackedRoundTripsThroughLoad(t *testing.T) {
	cp := &CodePage{Name: "roundtrip", Width: 8, Height: 8}
	for i := range cp.Glyphs {
		cp.Glyphs[i] = blankGlyph(8, 8)
	}
	cp.Glyphs['A'].Bitmap[0] = 1               // top-left pixel
	cp.Glyphs['A'].Bitmap[8*8-1] = 1           // bottom-right pixel
	cp.Glyphs['B'].Bitmap[3*8+4] = 1           // an interior pixel

	var buf bytes.Buffer
	if err := SaveBitPacked(&buf, cp); err != nil {
		t.Fatalf("SaveBitPacked: %v", err)
	}

	loaded, err := BitPacked.Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Width != 8 || loaded.Height != 8 {
		t.Fatalf("geometry = %dx%d, want 8x8", loaded.Width, loaded.Height)
	}
	if loaded.Glyphs['A'].At(0, 0) != 1 {
		t.Errorf("'A' top-left = %d, want 1", loaded.Glyphs['A'].At(0, 0))
	}
	if loaded.Glyphs['A'].At(7, 7) != 1 {
		t.Errorf("'A' bottom-right = %d, want 1", loaded.Glyphs['A'].At(7, 7))
	}
	if loaded.Glyphs['B'].At(4, 3) != 1 {
		t.Errorf("'B' (4,3) = %d, want 1", loaded.Glyphs['B'].At(4, 3))
	}
	if loaded.Glyphs['C'].At(0, 0) != 0 {
		t.Errorf("'C' should remain blank")
	}
}

func TestSaveBitPackedNonSquareGlyphs(t *testing.T) {
	cp := &CodePage{Name: "8x16", Width: 8, Height: 16}
	for i := range cp.Glyphs {
		cp.Glyphs[i] = blankGlyph(8, 16)
	}
	cp.Glyphs['X'].Bitmap[15*8+7] = 1 // bottom-right pixel of a tall glyph

	var buf bytes.Buffer
	if err := SaveBitPacked(&buf, cp); err != nil {
		t.Fatalf("SaveBitPacked: %v", err)
	}
	loaded, err := BitPacked.Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Glyphs['X'].At(7, 15) != 1 {
		t.Errorf("'X' bottom-right = %d, want 1", loaded.Glyphs['X'].At(7, 15))
	}
}
