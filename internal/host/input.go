package host

import (
	"github.com/veandco/go-sdl2/sdl"

	"retrobasic/internal/input"
)

// namedKeys maps the SDL keycodes that carry no useful character of
// their own to the console's named KeyCodes. Ordinary printable keys
// arrive through SDL's text-input event instead (see Host.handleEvent),
// so they are deliberately absent here.
var namedKeys = map[sdl.Keycode]input.KeyCode{
	sdl.K_RETURN:    input.KeyEnter,
	sdl.K_KP_ENTER:  input.KeyEnter,
	sdl.K_BACKSPACE: input.KeyBackspace,
	sdl.K_TAB:       input.KeyTab,
	sdl.K_ESCAPE:    input.KeyEscape,
	sdl.K_LEFT:      input.KeyLeft,
	sdl.K_RIGHT:     input.KeyRight,
	sdl.K_UP:        input.KeyUpArrow,
	sdl.K_DOWN:      input.KeyDownArrow,
	sdl.K_HOME:      input.KeyHome,
	sdl.K_END:       input.KeyEnd,
	sdl.K_DELETE:    input.KeyDelete,
	sdl.K_INSERT:    input.KeyInsert,
	sdl.K_F1:        input.KeyF1,
}

// sdlKeyToCode looks up the named KeyCode for an SDL keycode that has
// no corresponding text-input character, reporting ok=false for any
// key left to text input to handle.
func sdlKeyToCode(key sdl.Keycode) (input.KeyCode, bool) {
	code, ok := namedKeys[key]
	return code, ok
}

// modifiersFrom reads the current SDL modifier state into the
// console's Modifiers shape.
func modifiersFrom(mod sdl.Keymod) input.Modifiers {
	return input.Modifiers{
		Shift: mod&sdl.KMOD_SHIFT != 0,
		Ctrl:  mod&sdl.KMOD_CTRL != 0,
		Alt:   mod&sdl.KMOD_ALT != 0,
	}
}
