package main

import (
	"fmt"
	"image/png"
	"io"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"retrobasic/internal/codepage"
	"retrobasic/internal/palette"
)

const paletteSheetCols = 16

// fontStudioState owns the window and the CodePage/Palette currently
// loaded for editing; buildPane holds all of the mutable UI state (the
// selected glyph, paint colors, tool, etc.) as closures over locals, the
// same shape the sprite editor's buildSpriteLabPane used.
type fontStudioState struct {
	window fyne.Window
	cp     *codepage.CodePage
	pal    *palette.Palette
}

func newFontStudioState(w fyne.Window, cp *codepage.CodePage, pal *palette.Palette) *fontStudioState {
	return &fontStudioState{window: w, cp: cp, pal: pal}
}

func (s *fontStudioState) buildPane() fyne.CanvasObject {
	cp := s.cp
	pal := s.pal

	selectedGlyph := int('A')
	fgIndex := pal.Len() - 1
	bgIndex := 0
	selectedPaletteIndex := fgIndex
	erase := false
	showGrid := true
	hoverGX, hoverGY := -1, -1

	statusLabel := widget.NewLabel("Ready")
	setStatus := func(msg string) { statusLabel.SetText(msg) }

	sheetCell := cellPx(cp.Width, cp.Height, sheetMaxPx/sheetCols)
	editorCell := cellPx(cp.Width, cp.Height, editorMaxPx)

	sheetImage := canvas.NewImageFromImage(renderGlyphSheetImage(cp, colorOf(pal, fgIndex), colorOf(pal, bgIndex), sheetCell, selectedGlyph))
	sheetImage.FillMode = canvas.ImageFillOriginal

	editorImage := canvas.NewImageFromImage(renderGlyphEditorImage(cp.Glyphs[selectedGlyph], colorOf(pal, fgIndex), colorOf(pal, bgIndex), editorCell, hoverGX, hoverGY, showGrid))
	editorImage.FillMode = canvas.ImageFillOriginal

	glyphLabel := widget.NewLabel("")
	paletteIndexLabel := widget.NewLabel("")
	rEntry := widget.NewEntry()
	gEntry := widget.NewEntry()
	bEntry := widget.NewEntry()
	hexEntry := widget.NewEntry()

	const paletteChip = 20
	paletteRows := (pal.Len() + paletteSheetCols - 1) / paletteSheetCols
	paletteImage := canvas.NewImageFromImage(renderPaletteSheetImage(pal, paletteSheetCols, paletteChip, selectedPaletteIndex))
	paletteImage.FillMode = canvas.ImageFillOriginal

	var refreshVisuals func()
	var refreshPaletteEntry func()

	refreshVisuals = func() {
		sheetCell = cellPx(cp.Width, cp.Height, sheetMaxPx/sheetCols)
		editorCell = cellPx(cp.Width, cp.Height, editorMaxPx)
		fg := colorOf(pal, fgIndex)
		bg := colorOf(pal, bgIndex)
		sheetImage.Image = renderGlyphSheetImage(cp, fg, bg, sheetCell, selectedGlyph)
		sheetImage.Refresh()
		editorImage.Image = renderGlyphEditorImage(cp.Glyphs[selectedGlyph], fg, bg, editorCell, hoverGX, hoverGY, showGrid)
		editorImage.Refresh()
		paletteImage.Image = renderPaletteSheetImage(pal, paletteSheetCols, paletteChip, selectedPaletteIndex)
		paletteImage.Refresh()
		glyphLabel.SetText(fmt.Sprintf("Glyph %d (%q)  %dx%d", selectedGlyph, glyphRune(selectedGlyph), cp.Width, cp.Height))
	}

	refreshPaletteEntry = func() {
		c, err := pal.Get(selectedPaletteIndex)
		if err != nil {
			return
		}
		paletteIndexLabel.SetText(fmt.Sprintf("Index %d", selectedPaletteIndex))
		rEntry.SetText(strconv.Itoa(int(c.R())))
		gEntry.SetText(strconv.Itoa(int(c.G())))
		bEntry.SetText(strconv.Itoa(int(c.B())))
		hexEntry.SetText(fmt.Sprintf("%02X%02X%02X", c.R(), c.G(), c.B()))
	}

	sheetOverlay := newGridOverlay(sheetCols, sheetRows, nil, nil, func(x, y int) {
		idx := y*sheetCols + x
		if idx < 0 || idx >= codepage.NumGlyphs {
			return
		}
		selectedGlyph = idx
		refreshVisuals()
	}, nil, nil)

	editorOverlay := newGridOverlay(cp.Width, cp.Height, nil, nil, func(x, y int) {
		g := cp.Glyphs[selectedGlyph]
		bit := byte(1)
		if erase {
			bit = 0
		}
		g.Bitmap[y*g.Width+x] = bit
		refreshVisuals()
	}, func(x, y int) {
		hoverGX, hoverGY = x, y
		refreshVisuals()
	}, func() {
		hoverGX, hoverGY = -1, -1
		refreshVisuals()
	})

	paletteOverlay := newGridOverlay(paletteSheetCols, paletteRows, nil, nil, func(x, y int) {
		idx := y*paletteSheetCols + x
		if idx < 0 || idx >= pal.Len() {
			return
		}
		selectedPaletteIndex = idx
		refreshPaletteEntry()
		refreshVisuals()
	}, nil, nil)

	toolGroup := widget.NewRadioGroup([]string{"Pen", "Erase"}, func(choice string) {
		erase = choice == "Erase"
	})
	toolGroup.SetSelected("Pen")
	toolGroup.Horizontal = true

	gridCheck := widget.NewCheck("Show grid", func(v bool) {
		showGrid = v
		refreshVisuals()
	})
	gridCheck.SetChecked(showGrid)

	paletteOptions := paletteIndexOptions(pal.Len())
	fgSelect := widget.NewSelect(paletteOptions, func(v string) {
		if i, err := strconv.Atoi(v); err == nil {
			fgIndex = i
			refreshVisuals()
		}
	})
	fgSelect.SetSelected(strconv.Itoa(fgIndex))
	bgSelect := widget.NewSelect(paletteOptions, func(v string) {
		if i, err := strconv.Atoi(v); err == nil {
			bgIndex = i
			refreshVisuals()
		}
	})
	bgSelect.SetSelected(strconv.Itoa(bgIndex))

	clearButton := widget.NewButton("Clear glyph", func() {
		g := cp.Glyphs[selectedGlyph]
		for i := range g.Bitmap {
			g.Bitmap[i] = 0
		}
		refreshVisuals()
		setStatus(fmt.Sprintf("Cleared glyph %d", selectedGlyph))
	})
	fillButton := widget.NewButton("Fill glyph", func() {
		g := cp.Glyphs[selectedGlyph]
		for i := range g.Bitmap {
			g.Bitmap[i] = 1
		}
		refreshVisuals()
		setStatus(fmt.Sprintf("Filled glyph %d", selectedGlyph))
	})
	invertButton := widget.NewButton("Invert glyph", func() {
		g := cp.Glyphs[selectedGlyph]
		for i, v := range g.Bitmap {
			if v == 0 {
				g.Bitmap[i] = 1
			} else {
				g.Bitmap[i] = 0
			}
		}
		refreshVisuals()
		setStatus(fmt.Sprintf("Inverted glyph %d", selectedGlyph))
	})

	applyRGBButton := widget.NewButton("Apply RGB", func() {
		r, errR := strconv.Atoi(rEntry.Text)
		g, errG := strconv.Atoi(gEntry.Text)
		b, errB := strconv.Atoi(bEntry.Text)
		if errR != nil || errG != nil || errB != nil {
			setStatus("Invalid RGB value (expected 0-255)")
			return
		}
		if err := pal.Set(selectedPaletteIndex, palette.RGB(clampByte(r), clampByte(g), clampByte(b))); err != nil {
			setStatus(err.Error())
			return
		}
		refreshPaletteEntry()
		refreshVisuals()
		setStatus(fmt.Sprintf("Set palette index %d", selectedPaletteIndex))
	})

	applyHexButton := widget.NewButton("Apply hex", func() {
		r, g, b, err := parseHexColor(hexEntry.Text)
		if err != nil {
			setStatus("Invalid hex color (expected RRGGBB)")
			return
		}
		if err := pal.Set(selectedPaletteIndex, palette.RGB(r, g, b)); err != nil {
			setStatus(err.Error())
			return
		}
		refreshPaletteEntry()
		refreshVisuals()
		setStatus(fmt.Sprintf("Set palette index %d from hex", selectedPaletteIndex))
	})

	saveFontButton := widget.NewButton("Save font...", func() {
		d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			defer uc.Close()
			if err := codepage.SaveBitPacked(uc, cp); err != nil {
				setStatus("Save failed: " + err.Error())
				return
			}
			setStatus("Saved font to " + uc.URI().Name())
		}, s.window)
		d.Show()
	})

	loadFontButton := widget.NewButton("Load font...", func() {
		d := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			defer uc.Close()
			data, readErr := io.ReadAll(uc)
			if readErr != nil {
				setStatus("Load failed: " + readErr.Error())
				return
			}
			loaded, loadErr := codepage.BitPacked.Load(data)
			if loadErr != nil {
				setStatus("Load failed: " + loadErr.Error())
				return
			}
			*cp = *loaded
			sheetOverlay.SetGrid(sheetCols, sheetRows)
			editorOverlay.SetGrid(cp.Width, cp.Height)
			refreshVisuals()
			setStatus("Loaded font from " + uc.URI().Name())
		}, s.window)
		d.Show()
	})

	exportSheetButton := widget.NewButton("Export sheet PNG...", func() {
		d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			defer uc.Close()
			img := renderGlyphSheetImage(cp, colorOf(pal, fgIndex), colorOf(pal, bgIndex), sheetCell, selectedGlyph)
			if err := png.Encode(uc, img); err != nil {
				setStatus("Export failed: " + err.Error())
				return
			}
			setStatus("Exported sheet to " + uc.URI().Name())
		}, s.window)
		d.Show()
	})

	sheetPanel := container.NewVBox(
		widget.NewLabel("Glyph Sheet (click to select)"),
		container.NewStack(sheetImage, sheetOverlay),
	)

	editorPanel := container.NewVBox(
		glyphLabel,
		container.NewStack(editorImage, editorOverlay),
		container.NewHBox(toolGroup, gridCheck),
		container.NewGridWithColumns(3, clearButton, fillButton, invertButton),
		container.NewHBox(widget.NewLabel("Foreground"), fgSelect, widget.NewLabel("Background"), bgSelect),
	)

	paletteColorEditor := container.NewVBox(
		paletteIndexLabel,
		container.NewHBox(widget.NewLabel("R"), rEntry, widget.NewLabel("G"), gEntry, widget.NewLabel("B"), bEntry),
		container.NewHBox(applyRGBButton),
		container.NewHBox(widget.NewLabel("Hex"), hexEntry, applyHexButton),
	)

	palettePanel := container.NewVBox(
		widget.NewLabel("Palette (click a swatch to edit)"),
		container.NewStack(paletteImage, paletteOverlay),
		paletteColorEditor,
	)

	fileOps := container.NewHBox(loadFontButton, saveFontButton, exportSheetButton)

	refreshVisuals()
	refreshPaletteEntry()

	left := container.NewVBox(sheetPanel, widget.NewSeparator(), fileOps)
	right := container.NewVBox(editorPanel, widget.NewSeparator(), palettePanel)

	split := container.NewHSplit(left, container.NewScroll(right))
	split.Offset = 0.45

	return container.NewBorder(nil, statusLabel, nil, nil, split)
}

// glyphRune renders code c as a displayable rune for the label, standing
// in the common control-code range with a placeholder rather than an
// unprintable character.
func glyphRune(c int) rune {
	if c < 0x20 || c == 0x7F {
		return '.'
	}
	return rune(c)
}

// paletteIndexOptions builds the string option list the foreground and
// background selects are populated with.
func paletteIndexOptions(n int) []string {
	opts := make([]string, n)
	for i := 0; i < n; i++ {
		opts[i] = strconv.Itoa(i)
	}
	return opts
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// parseHexColor parses a 6-digit RRGGBB hex string into channel bytes.
func parseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("hex color must be 6 digits, got %d", len(s))
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, convErr := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if convErr != nil {
			return 0, 0, 0, convErr
		}
		rgb[i] = uint8(v)
	}
	return rgb[0], rgb[1], rgb[2], nil
}
