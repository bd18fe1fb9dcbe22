package main

import "testing"

func TestGlyphRunePrintsAPlaceholderForControlCodes(t *testing.T) {
	if got := glyphRune('A'); got != 'A' {
		t.Errorf("glyphRune('A') = %q, want 'A'", got)
	}
	if got := glyphRune(0x07); got != '.' {
		t.Errorf("glyphRune(0x07) = %q, want '.'", got)
	}
	if got := glyphRune(0x7F); got != '.' {
		t.Errorf("glyphRune(0x7F) = %q, want '.'", got)
	}
}

func TestPaletteIndexOptionsCoversEveryIndex(t *testing.T) {
	opts := paletteIndexOptions(3)
	want := []string{"0", "1", "2"}
	if len(opts) != len(want) {
		t.Fatalf("len(opts) = %d, want %d", len(opts), len(want))
	}
	for i, w := range want {
		if opts[i] != w {
			t.Errorf("opts[%d] = %q, want %q", i, opts[i], w)
		}
	}
}

func TestClampByteClampsToValidRange(t *testing.T) {
	cases := []struct {
		in   int
		want uint8
	}{
		{-5, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{999, 255},
	}
	for _, c := range cases {
		if got := clampByte(c.in); got != c.want {
			t.Errorf("clampByte(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseHexColorParsesValidInput(t *testing.T) {
	r, g, b, err := parseHexColor("FF8000")
	if err != nil {
		t.Fatalf("parseHexColor: %v", err)
	}
	if r != 0xFF || g != 0x80 || b != 0x00 {
		t.Errorf("parseHexColor(FF8000) = (%d,%d,%d), want (255,128,0)", r, g, b)
	}
}

func TestParseHexColorRejectsWrongLength(t *testing.T) {
	if _, _, _, err := parseHexColor("FFF"); err == nil {
		t.Error("expected an error for a 3-digit hex string")
	}
}

func TestParseHexColorRejectsNonHexDigits(t *testing.T) {
	if _, _, _, err := parseHexColor("ZZZZZZ"); err == nil {
		t.Error("expected an error for non-hex digits")
	}
}
