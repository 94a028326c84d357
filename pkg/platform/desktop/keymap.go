package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pixloop/pkg/input"
)

var keymap = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA, ebiten.KeyB: input.KeyB, ebiten.KeyC: input.KeyC, ebiten.KeyD: input.KeyD,
	ebiten.KeyE: input.KeyE, ebiten.KeyF: input.KeyF, ebiten.KeyG: input.KeyG, ebiten.KeyH: input.KeyH,
	ebiten.KeyI: input.KeyI, ebiten.KeyJ: input.KeyJ, ebiten.KeyK: input.KeyK, ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM, ebiten.KeyN: input.KeyN, ebiten.KeyO: input.KeyO, ebiten.KeyP: input.KeyP,
	ebiten.KeyQ: input.KeyQ, ebiten.KeyR: input.KeyR, ebiten.KeyS: input.KeyS, ebiten.KeyT: input.KeyT,
	ebiten.KeyU: input.KeyU, ebiten.KeyV: input.KeyV, ebiten.KeyW: input.KeyW, ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY, ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit1: input.Key1, ebiten.KeyDigit2: input.Key2, ebiten.KeyDigit3: input.Key3,
	ebiten.KeyDigit4: input.Key4, ebiten.KeyDigit5: input.Key5, ebiten.KeyDigit6: input.Key6,
	ebiten.KeyDigit7: input.Key7, ebiten.KeyDigit8: input.Key8, ebiten.KeyDigit9: input.Key9,
	ebiten.KeyDigit0: input.Key0,

	ebiten.KeyEnter:        input.KeyReturn,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyMinus:        input.KeyMinus,
	ebiten.KeyEqual:        input.KeyEquals,
	ebiten.KeyBracketLeft:  input.KeyLeftBracket,
	ebiten.KeyBracketRight: input.KeyRightBracket,
	ebiten.KeyBackslash:    input.KeyBackslash,
	ebiten.KeySemicolon:    input.KeySemicolon,
	ebiten.KeyQuote:        input.KeyApostrophe,
	ebiten.KeyBackquote:    input.KeyGrave,
	ebiten.KeyComma:        input.KeyComma,
	ebiten.KeyPeriod:       input.KeyPeriod,
	ebiten.KeySlash:        input.KeySlash,
	ebiten.KeyCapsLock:     input.KeyCapsLock,

	ebiten.KeyF1: input.KeyF1, ebiten.KeyF2: input.KeyF2, ebiten.KeyF3: input.KeyF3, ebiten.KeyF4: input.KeyF4,
	ebiten.KeyF5: input.KeyF5, ebiten.KeyF6: input.KeyF6, ebiten.KeyF7: input.KeyF7, ebiten.KeyF8: input.KeyF8,
	ebiten.KeyF9: input.KeyF9, ebiten.KeyF10: input.KeyF10, ebiten.KeyF11: input.KeyF11, ebiten.KeyF12: input.KeyF12,

	ebiten.KeyPrintScreen: input.KeyPrintScreen,
	ebiten.KeyScrollLock:  input.KeyScrollLock,
	ebiten.KeyPause:       input.KeyPause,
	ebiten.KeyInsert:      input.KeyInsert,
	ebiten.KeyHome:        input.KeyHome,
	ebiten.KeyPageUp:      input.KeyPageUp,
	ebiten.KeyDelete:      input.KeyDelete,
	ebiten.KeyEnd:         input.KeyEnd,
	ebiten.KeyPageDown:    input.KeyPageDown,
	ebiten.KeyArrowRight:  input.KeyRight,
	ebiten.KeyArrowLeft:   input.KeyLeft,
	ebiten.KeyArrowDown:   input.KeyDown,
	ebiten.KeyArrowUp:     input.KeyUp,

	// Keypad slots have no symbolic names; HID usages 88..98.
	ebiten.KeyNumpadEnter: input.Key(88),
	ebiten.KeyNumpad1:     input.Key(89),
	ebiten.KeyNumpad2:     input.Key(90),
	ebiten.KeyNumpad3:     input.Key(91),
	ebiten.KeyNumpad4:     input.Key(92),
	ebiten.KeyNumpad5:     input.Key(93),
	ebiten.KeyNumpad6:     input.Key(94),
	ebiten.KeyNumpad7:     input.Key(95),
	ebiten.KeyNumpad8:     input.Key(96),
	ebiten.KeyNumpad9:     input.Key(97),
	ebiten.KeyNumpad0:     input.Key(98),

	ebiten.KeyControlLeft:  input.KeyLeftCtrl,
	ebiten.KeyShiftLeft:    input.KeyLeftShift,
	ebiten.KeyAltLeft:      input.KeyLeftAlt,
	ebiten.KeyMetaLeft:     input.KeyLeftMeta,
	ebiten.KeyControlRight: input.KeyRightCtrl,
	ebiten.KeyShiftRight:   input.KeyRightShift,
	ebiten.KeyAltRight:     input.KeyRightAlt,
	ebiten.KeyMetaRight:    input.KeyRightMeta,
}

// Scancode maps an ebiten key to its scancode slot.
func Scancode(k ebiten.Key) (input.Key, bool) {
	sc, ok := keymap[k]
	return sc, ok
}

var buttonmap = [input.ButtonCount]ebiten.MouseButton{
	input.ButtonLeft:   ebiten.MouseButtonLeft,
	input.ButtonMiddle: ebiten.MouseButtonMiddle,
	input.ButtonRight:  ebiten.MouseButtonRight,
	input.ButtonX1:     ebiten.MouseButton3,
	input.ButtonX2:     ebiten.MouseButton4,
}
