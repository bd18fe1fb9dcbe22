package interp

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestBSaveThenBLoadRoundTripsFramebuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.bin")
	ip, _, _ := newTestInterp(t, `
SCREEN 13
PSET (1, 1), 6
BSAVE "`+path+`", 0, 64000
CLS
BLOAD "`+path+`", 0, 64000
`)
	if err := ip.Run(testContext(t)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := ip.api.Point(1, 1); got != 6 {
		t.Errorf("Point(1,1) after BLOAD = %d, want 6", got)
	}
}

func TestBSaveBLoadDefaultOffsetAndLengthCoverWholeFramebuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whole.bin")
	ip, _, _ := newTestInterp(t, `
SCREEN 13
PSET (10, 10), 9
BSAVE "`+path+`"
CLS
BLOAD "`+path+`"
`)
	if err := ip.Run(testContext(t)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := ip.api.Point(10, 10); got != 9 {
		t.Errorf("Point(10,10) after default-range BLOAD = %d, want 9", got)
	}
}

func TestBLoadMissingFileReportsError(t *testing.T) {
	out, _ := runSrc(t, `BLOAD "/nonexistent/path/does-not-exist.bin"`)
	if !strings.Contains(out, "Error:") {
		t.Errorf("output = %q, want an Error: diagnostic", out)
	}
}
