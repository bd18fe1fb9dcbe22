// Command fontstudio is a small offline devkit for browsing and editing a
// CodePage's glyphs and the active palette: a Fyne app with a glyph sheet,
// a zoomed pixel editor, and a palette swatch grid, adapted from the
// sprite editor's tile-grid-plus-palette-swatch layout.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"retrobasic/internal/codepage"
	"retrobasic/internal/palette"
)

const (
	defaultWindowWidth  = 980
	defaultWindowHeight = 640
)

func main() {
	fontPath := flag.String("font", "", "Bit-packed font file to open (defaults to the builtin 8x8 font)")
	height := flag.Int("height", 8, "Glyph height when starting from a builtin font: 8 or 16")
	paletteName := flag.String("palette", "VGA", "Starting palette: CGA, EGA, or VGA")
	flag.Parse()

	cp, err := loadCodePage(*fontPath, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fontstudio: %v\n", err)
		os.Exit(1)
	}
	pal := loadPalette(*paletteName)

	a := app.New()
	w := a.NewWindow("Font Studio")
	w.Resize(fyne.NewSize(defaultWindowWidth, defaultWindowHeight))

	state := newFontStudioState(w, cp, pal)
	w.SetContent(state.buildPane())
	w.ShowAndRun()
}

// loadCodePage opens a bit-packed font file when one is given, otherwise
// starts from the matching builtin font so the tool is usable with no
// external assets, mirroring cmd/host's own font-fallback behavior.
func loadCodePage(path string, height int) (*codepage.CodePage, error) {
	if path == "" {
		if height >= 16 {
			return codepage.Builtin8x16.Clone(), nil
		}
		return codepage.Builtin8x8.Clone(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cp, err := codepage.BitPacked.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cp, nil
}

// loadPalette resolves a starting palette by name, defaulting to VGA for
// an unrecognized name rather than failing the tool outright.
func loadPalette(name string) *palette.Palette {
	switch name {
	case "CGA", "cga":
		return palette.CGA.Clone()
	case "EGA", "ega":
		return palette.EGA.Clone()
	default:
		return palette.VGA.Clone()
	}
}
