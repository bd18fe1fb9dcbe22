// Package host is the reference SDL2 GUI shell: it presents the IO
// Emulator's framebuffer in a real window, forwards SDL2 keyboard and
// mouse events into the input queue, and plays synthesizer output
// through an SDL2 audio device, mirroring the teacher's emulator/UI
// split without any of the CPU/PPU specifics.
package host

import (
	"retrobasic/internal/framebuffer"
	"retrobasic/internal/palette"
)

// renderRGB converts one palette-indexed framebuffer into a packed
// RGB24 pixel buffer scaled by nearest-neighbor integer replication,
// the same manual-scaling approach the teacher's renderFixed used to
// get pixel-perfect blocks instead of relying on renderer-side
// filtering. Kept free of any SDL dependency so it can be unit tested
// directly.
func renderRGB(fb *framebuffer.Framebuffer, pal *palette.Palette, scale int) []byte {
	if scale < 1 {
		scale = 1
	}
	w, h := fb.Width, fb.Height
	scaledW, scaledH := w*scale, h*scale
	out := make([]byte, scaledW*scaledH*3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx, _ := fb.ReadPixelAt(x, y)
			color, err := pal.Get(int(idx))
			if err != nil {
				color = palette.RGB(0, 0, 0)
			}
			r, g, b := color.R(), color.G(), color.B()

			baseY := y * scale
			baseX := x * scale
			for sy := 0; sy < scale; sy++ {
				rowStart := (baseY + sy) * scaledW * 3
				for sx := 0; sx < scale; sx++ {
					i := rowStart + (baseX+sx)*3
					out[i] = r
					out[i+1] = g
					out[i+2] = b
				}
			}
		}
	}
	return out
}
