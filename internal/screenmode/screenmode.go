// Package screenmode defines the fixed table of QBASIC-era SCREEN
// modes: text grid size, pixel resolution, palette and font per mode.
package screenmode

import (
	"fmt"

	"retrobasic/internal/codepage"
	"retrobasic/internal/palette"
)

// Mode describes one SCREEN mode entry.
type Mode struct {
	Number   int
	TextCols int
	TextRows int
	ResW     int
	ResH     int
	Palette  *palette.Palette
	CellW    int
	CellH    int
}

// CodePage returns the code page this mode renders text with: the 8x16
// font for modes with 16-pixel-tall cells (9-12) and the 8x8 font for
// every other mode, including mode 13.
func (m Mode) CodePage(font8x8, font8x16 *codepage.CodePage) *codepage.CodePage {
	if m.CellH == 16 {
		return font8x16
	}
	return font8x8
}

// Table is the fixed mode -> geometry/palette mapping from spec.md §6.
var Table = map[int]Mode{
	0:  {Number: 0, TextCols: 40, TextRows: 25, ResW: 320, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	1:  {Number: 1, TextCols: 40, TextRows: 25, ResW: 320, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	2:  {Number: 2, TextCols: 80, TextRows: 25, ResW: 640, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	3:  {Number: 3, TextCols: 40, TextRows: 25, ResW: 320, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	4:  {Number: 4, TextCols: 40, TextRows: 25, ResW: 320, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	5:  {Number: 5, TextCols: 40, TextRows: 25, ResW: 320, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	6:  {Number: 6, TextCols: 80, TextRows: 25, ResW: 640, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	7:  {Number: 7, TextCols: 40, TextRows: 25, ResW: 320, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	8:  {Number: 8, TextCols: 80, TextRows: 25, ResW: 640, ResH: 200, Palette: palette.EGA, CellW: 8, CellH: 8},
	9:  {Number: 9, TextCols: 80, TextRows: 25, ResW: 640, ResH: 350, Palette: palette.EGA, CellW: 8, CellH: 16},
	10: {Number: 10, TextCols: 80, TextRows: 25, ResW: 640, ResH: 350, Palette: palette.EGA, CellW: 8, CellH: 16},
	11: {Number: 11, TextCols: 80, TextRows: 30, ResW: 640, ResH: 480, Palette: palette.EGA, CellW: 8, CellH: 16},
	12: {Number: 12, TextCols: 80, TextRows: 30, ResW: 640, ResH: 480, Palette: palette.EGA, CellW: 8, CellH: 16},
	13: {Number: 13, TextCols: 40, TextRows: 25, ResW: 320, ResH: 200, Palette: palette.VGA, CellW: 8, CellH: 8},
}

// Lookup returns the Mode for n, or an error if n names no mode.
func Lookup(n int) (Mode, error) {
	m, ok := Table[n]
	if !ok {
		return Mode{}, fmt.Errorf("unsupported screen mode %d", n)
	}
	// Return a clone with a fresh palette so per-console mutations
	// (PALETTE statement, set_color) never alias the fixed tables.
	m.Palette = m.Palette.Clone()
	return m, nil
}
