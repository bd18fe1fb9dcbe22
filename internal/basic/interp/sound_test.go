package interp

import "testing"

func TestBeepSoundPlayDelegateToDriver(t *testing.T) {
	ip, _, snd := newTestInterp(t, `
BEEP
SOUND 440, 250
PLAY "CDE"
`)
	if err := ip.Run(testContext(t)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if snd.beeps != 1 {
		t.Errorf("beeps = %d, want 1", snd.beeps)
	}
	if len(snd.tones) != 1 || snd.tones[0] != [2]int{440, 250} {
		t.Errorf("tones = %v, want [[440 250]]", snd.tones)
	}
	if len(snd.music) != 1 || snd.music[0] != "CDE" {
		t.Errorf("music = %v, want [CDE]", snd.music)
	}
}

func TestSleepReturnsPromptly(t *testing.T) {
	ip, _, _ := newTestInterp(t, `
SLEEP 0.01
PRINT "done"
`)
	if err := ip.Run(testContext(t)); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRandomizeReseedsRng(t *testing.T) {
	ip, _, _ := newTestInterp(t, `
RANDOMIZE 7
`)
	if err := ip.Run(testContext(t)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ip.rng == nil {
		t.Error("expected rng to be reseeded, not nil")
	}
}

func TestSwapExchangesVariables(t *testing.T) {
	out, _ := runSrc(t, `
A = 1
B = 2
SWAP A, B
PRINT A
PRINT B
`)
	if out != "2\r\n1\r\n" {
		t.Errorf("got %q", out)
	}
}

func TestClsHomesCursor(t *testing.T) {
	ip, _, _ := newTestInterp(t, `
PRINT "hello"
CLS
`)
	if err := ip.Run(testContext(t)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	col, row := ip.api.Emu.CursorPosition()
	if col != 0 || row != 0 {
		t.Errorf("cursor after CLS = (%d,%d), want (0,0)", col, row)
	}
}
