package host

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"retrobasic/internal/debug"
	"retrobasic/internal/input"
	"retrobasic/internal/ioemu"
)

// frameInterval is the host's render/poll cadence. The BASIC
// interpreter runs on its own goroutine and drives its own timing
// through the scheduler; this loop only owns presentation and input,
// so it can run independently at a fixed rate the way the teacher's
// emulator loop drove RunFrame once per tick.
const frameInterval = time.Second / 60

// maxQueuedAudio caps how much rendered sound the host will buffer
// ahead of the device, matching the teacher UI's "skip a frame's audio
// rather than let the queue grow unbounded" policy.
const maxQueuedAudio = 44100 * 2 // ~1s of mono 16-bit samples

// Host is the reference SDL2 presentation shell: a window sized to the
// emulator's current screen mode (times the display scale), a
// streaming texture it repaints from the framebuffer, and an audio
// device fed by the sound synthesizer's rendered samples.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int

	emu    *ioemu.Emulator
	queue  *input.Queue
	logger debug.ComponentLogger

	scale    int
	audioDev sdl.AudioDeviceID
}

// New opens an SDL window sized for the emulator's current screen
// mode at the given scale, and an optional audio device. Event
// handling forwards into queue, matching how cmd/host wires the same
// queue into the scheduler and the interpreter.
func New(emu *ioemu.Emulator, queue *input.Queue, scale int, logger *debug.Logger) (*Host, error) {
	if scale < 1 || scale > 6 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("host: init SDL: %w", err)
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	fb := emu.Framebuffer()
	width := int32(fb.Width * scale)
	height := int32(fb.Height * scale)

	window, err := sdl.CreateWindow(
		"RetroBASIC",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("host: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("host: create renderer: %w", err)
	}

	h := &Host{
		window:   window,
		renderer: renderer,
		emu:      emu,
		queue:    queue,
		logger:   logger.For(debug.ComponentHost),
		scale:    scale,
	}

	if err := h.resizeTexture(fb.Width, fb.Height); err != nil {
		h.Close()
		return nil, err
	}

	spec := sdl.AudioSpec{Freq: 44100, Format: sdl.AUDIO_S16SYS, Channels: 1, Samples: 735}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		h.logf(debug.LogLevelWarning, "no audio device available: %v", err)
		h.audioDev = 0
	} else {
		h.audioDev = dev
		sdl.PauseAudioDevice(dev, false)
	}

	sdl.StartTextInput()
	return h, nil
}

func (h *Host) logf(level debug.LogLevel, format string, args ...interface{}) {
	h.logger.Logf(level, format, args...)
}

// resizeTexture (re)creates the streaming texture and window size for
// a width/height in framebuffer pixels, called on construction and
// whenever a SCREEN statement changes the active mode's resolution.
func (h *Host) resizeTexture(fbW, fbH int) error {
	if h.texture != nil {
		h.texture.Destroy()
		h.texture = nil
	}
	scaledW, scaledH := int32(fbW*h.scale), int32(fbH*h.scale)
	tex, err := h.renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING, scaledW, scaledH)
	if err != nil {
		return fmt.Errorf("host: create texture: %w", err)
	}
	h.texture = tex
	h.texW, h.texH = fbW, fbH
	h.window.SetSize(scaledW, scaledH)
	return nil
}

// Run polls SDL events and repaints the framebuffer at frameInterval
// until ctx is cancelled (the interpreter finished or errored) or the
// user closes the window, in which case it calls cancel so the
// interpreter's goroutine unwinds too. Run must be called from the
// thread that created the window, the same constraint the teacher's
// UI.Run carried for SDL.
func (h *Host) Run(ctx context.Context, cancel context.CancelFunc) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if quit := h.handleEvent(event); quit {
				cancel()
				return nil
			}
		}

		if err := h.render(); err != nil {
			return err
		}
	}
}

// handleEvent forwards one SDL event into the input queue or mouse
// state, reporting true if it was a quit request.
func (h *Host) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.KeyboardEvent:
		code, named := sdlKeyToCode(e.Keysym.Sym)
		if !named {
			// Printable characters arrive via TextInputEvent instead;
			// an unnamed key with no text (e.g. a bare modifier) has
			// nothing useful to enqueue.
			return false
		}
		kind := input.KeyUp
		if e.Type == sdl.KEYDOWN {
			kind = input.KeyDown
		}
		h.queue.Inject(input.KeyEvent{Kind: kind, Code: code, Modifiers: modifiersFrom(sdl.GetModState())})

	case *sdl.TextInputEvent:
		for _, r := range textOf(e.Text) {
			mods := modifiersFrom(sdl.GetModState())
			h.queue.Inject(input.KeyEvent{Kind: input.KeyDown, Code: input.KeyCode(r), Char: r, Modifiers: mods})
			h.queue.Inject(input.KeyEvent{Kind: input.KeyUp, Code: input.KeyCode(r), Char: r, Modifiers: mods})
		}

	case *sdl.MouseMotionEvent:
		h.queue.SetMouseState(int(e.X)/h.scale, int(e.Y)/h.scale, e.State&sdl.ButtonLMask() != 0, e.State&sdl.ButtonRMask() != 0, e.State&sdl.ButtonMMask() != 0)

	case *sdl.MouseButtonEvent:
		m := h.queue.Mouse()
		left, right, mid := m.LeftDown, m.RightDown, m.Mid
		down := e.Type == sdl.MOUSEBUTTONDOWN
		switch e.Button {
		case sdl.BUTTON_LEFT:
			left = down
		case sdl.BUTTON_RIGHT:
			right = down
		case sdl.BUTTON_MIDDLE:
			mid = down
		}
		h.queue.SetMouseState(int(e.X)/h.scale, int(e.Y)/h.scale, left, right, mid)
	}
	return false
}

// textOf trims the trailing NUL bytes SDL pads its fixed-size text
// buffer with and decodes the remainder as runes.
func textOf(buf [32]byte) []rune {
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return []rune(string(buf[:n]))
}

// render repaints the window from the current framebuffer. With a
// single buffer it polls the dirty flag rather than tracking damage
// regions itself; double-buffered mode has no equivalent cheap signal
// for "the back buffer changed since last tick", so it presents and
// swaps on every tick instead.
func (h *Host) render() error {
	fb := h.emu.Framebuffer()
	if fb.Width != h.texW || fb.Height != h.texH {
		if err := h.resizeTexture(fb.Width, fb.Height); err != nil {
			return err
		}
	}
	doubleBuffered := h.emu.DoubleBuffered()
	if !doubleBuffered && !fb.Dirty() {
		return nil
	}

	pixels := renderRGB(fb, h.emu.Palette(), h.scale)
	pitch := fb.Width * h.scale * 3
	if err := h.texture.Update(nil, unsafe.Pointer(&pixels[0]), pitch); err != nil {
		return fmt.Errorf("host: update texture: %w", err)
	}
	if !doubleBuffered {
		fb.ResetDirty()
	}

	h.renderer.Clear()
	if err := h.renderer.Copy(h.texture, nil, nil); err != nil {
		return fmt.Errorf("host: copy texture: %w", err)
	}
	h.renderer.Present()

	if doubleBuffered {
		h.emu.SwapBuffers()
	}
	return nil
}

// Write implements sound.Sink: it queues rendered PCM samples to the
// audio device, dropping them once the device's own queue has more
// than maxQueuedAudio buffered rather than letting playback drift
// further and further behind real time.
func (h *Host) Write(samples []int16) {
	if h.audioDev == 0 || len(samples) == 0 {
		return
	}
	if sdl.GetQueuedAudioSize(h.audioDev) > uint32(maxQueuedAudio) {
		return
	}
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	if err := sdl.QueueAudio(h.audioDev, buf); err != nil {
		h.logf(debug.LogLevelWarning, "queue audio: %v", err)
	}
}

// Close tears down every SDL resource the host opened.
func (h *Host) Close() {
	if h.audioDev != 0 {
		sdl.CloseAudioDevice(h.audioDev)
	}
	if h.texture != nil {
		h.texture.Destroy()
	}
	if h.renderer != nil {
		h.renderer.Destroy()
	}
	if h.window != nil {
		h.window.Destroy()
	}
	sdl.Quit()
}
