package screenmode

import (
	"testing"

	"retrobasic/internal/codepage"
)

func TestLookupReturnsKnownModeAndErrorsOnUnknown(t *testing.T) {
	m, err := Lookup(0)
	if err != nil {
		t.Fatalf("Lookup(0) failed: %v", err)
	}
	if m.TextCols != 40 || m.TextRows != 25 || m.ResW != 320 || m.ResH != 200 {
		t.Errorf("mode 0 geometry = %+v, want 40x25 text / 320x200 pixels", m)
	}

	if _, err := Lookup(99); err == nil {
		t.Error("Lookup(99) should error for an unsupported mode")
	}
}

func TestLookupClonesPaletteSoMutationsDontAliasTheFixedTable(t *testing.T) {
	m, err := Lookup(0)
	if err != nil {
		t.Fatalf("Lookup(0) failed: %v", err)
	}
	m.Palette.Set(0, 0xFFFFFFFF)

	orig, _ := Lookup(0)
	c, _ := orig.Palette.Get(0)
	if c == 0xFFFFFFFF {
		t.Error("mutating a looked-up mode's palette affected a later lookup")
	}
}

func TestCodePageSelectsFontByCellHeight(t *testing.T) {
	font8 := &codepage.CodePage{Name: "8x8"}
	font16 := &codepage.CodePage{Name: "8x16"}

	m8, _ := Lookup(0)
	if got := m8.CodePage(font8, font16); got != font8 {
		t.Error("mode 0 (CellH=8) should select the 8x8 font")
	}

	m9, _ := Lookup(9)
	if got := m9.CodePage(font8, font16); got != font16 {
		t.Error("mode 9 (CellH=16) should select the 8x16 font")
	}
}

func TestTableCoversModesZeroThroughThirteen(t *testing.T) {
	for n := 0; n <= 13; n++ {
		if _, ok := Table[n]; !ok {
			t.Errorf("Table is missing mode %d", n)
		}
	}
}
