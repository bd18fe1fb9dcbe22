package interp

import "testing"

func TestDimAndArrayAssignment(t *testing.T) {
	out, _ := runSrc(t, `
DIM A(3)
A(0) = 10
A(3) = 40
PRINT A(0)
PRINT A(3)
`)
	if out != "10\r\n40\r\n" {
		t.Errorf("got %q", out)
	}
}

func TestDimStringArrayDefaultsEmpty(t *testing.T) {
	out, _ := runSrc(t, `
DIM S$(2)
PRINT S$(1)
`)
	if out != "\r\n" {
		t.Errorf("got %q, want an empty line", out)
	}
}

func TestDimTwoDimensional(t *testing.T) {
	out, _ := runSrc(t, `
DIM G(2, 2)
G(1, 1) = 7
PRINT G(1, 1)
PRINT G(0, 0)
`)
	if out != "7\r\n0\r\n" {
		t.Errorf("got %q", out)
	}
}

func TestDataReadRestore(t *testing.T) {
	out, _ := runSrc(t, `
DATA 1, 2, 3
READ A
READ B
READ C
PRINT A + B + C
RESTORE
READ D
PRINT D
`)
	if out != "6\r\n1\r\n" {
		t.Errorf("got %q", out)
	}
}

func TestDataStrings(t *testing.T) {
	out, _ := runSrc(t, `
DATA "HELLO", "WORLD"
READ A$
READ B$
PRINT A$ + " " + B$
`)
	if out != "HELLO WORLD\r\n" {
		t.Errorf("got %q", out)
	}
}

func TestReadPastEndOfDataErrors(t *testing.T) {
	out, _ := runSrc(t, `
DATA 1
READ A
READ B
`)
	if out != "Error: Out of DATA\r\n" {
		t.Errorf("got %q", out)
	}
}

func TestRestoreToLabel(t *testing.T) {
	out, _ := runSrc(t, `
DATA 1, 2
Here:
DATA 3, 4
READ A
READ B
RESTORE Here
READ C
PRINT A
PRINT B
PRINT C
`)
	if out != "1\r\n2\r\n3\r\n" {
		t.Errorf("got %q", out)
	}
}
