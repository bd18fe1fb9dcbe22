package palette

import "testing"

func TestRGBPacksChannelsWithFullAlpha(t *testing.T) {
	c := RGB(0x11, 0x22, 0x33)
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0xFF {
		t.Errorf("RGB(0x11,0x22,0x33) = %+v, want R=11 G=22 B=33 A=FF", c)
	}
}

func TestGetAndSetRangeChecks(t *testing.T) {
	p := &Palette{Colors: []Color{RGB(1, 2, 3)}}

	if _, err := p.Get(1); err == nil {
		t.Error("Get(1) on a 1-entry palette should error")
	}
	if _, err := p.Get(-1); err == nil {
		t.Error("Get(-1) should error")
	}
	c, err := p.Get(0)
	if err != nil || c.R() != 1 {
		t.Errorf("Get(0) = %+v, %v, want R=1, nil", c, err)
	}

	if err := p.Set(1, RGB(9, 9, 9)); err == nil {
		t.Error("Set(1) on a 1-entry palette should error")
	}
	if err := p.Set(0, RGB(9, 9, 9)); err != nil {
		t.Fatalf("Set(0) failed: %v", err)
	}
	if got, _ := p.Get(0); got.R() != 9 {
		t.Errorf("after Set(0), Get(0).R() = %d, want 9", got.R())
	}
}

func TestCloneIsIndependentOfSource(t *testing.T) {
	p := &Palette{Name: "orig", Colors: []Color{RGB(1, 2, 3)}}
	clone := p.Clone()
	clone.Set(0, RGB(9, 9, 9))
	clone.Name = "clone"

	if got, _ := p.Get(0); got.R() != 1 {
		t.Error("mutating the clone affected the source palette")
	}
	if p.Name != "orig" {
		t.Error("renaming the clone affected the source palette's name")
	}
}

func TestEGANameCoversAllSixteenEntriesAndRejectsOutOfRange(t *testing.T) {
	if EGAName(0) != "black" || EGAName(15) != "white" {
		t.Errorf("EGAName(0)=%q EGAName(15)=%q, want black/white", EGAName(0), EGAName(15))
	}
	if EGAName(-1) != "" || EGAName(16) != "" {
		t.Error("EGAName should return empty string out of range")
	}
}

func TestFixedPalettesHaveExpectedLengths(t *testing.T) {
	if CGA.Len() != 4 {
		t.Errorf("CGA.Len() = %d, want 4", CGA.Len())
	}
	if EGA.Len() != 16 {
		t.Errorf("EGA.Len() = %d, want 16", EGA.Len())
	}
	if VGA.Len() != 256 {
		t.Errorf("VGA.Len() = %d, want 256", VGA.Len())
	}
}

func TestVGAEmbedsEGAInFirstSixteenEntries(t *testing.T) {
	for i := 0; i < 16; i++ {
		want, _ := EGA.Get(i)
		got, _ := VGA.Get(i)
		if got != want {
			t.Errorf("VGA[%d] = %v, want EGA[%d] = %v", i, got, i, want)
		}
	}
}

func TestVGAGrayRampIsMonotonic(t *testing.T) {
	prev, _ := VGA.Get(232)
	for i := 233; i < 256; i++ {
		c, _ := VGA.Get(i)
		if c.R() <= prev.R() {
			t.Errorf("VGA gray ramp not increasing at index %d: %d <= %d", i, c.R(), prev.R())
		}
		prev = c
	}
}
