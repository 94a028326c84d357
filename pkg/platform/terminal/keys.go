package terminal

import (
	"github.com/gdamore/tcell/v2"

	"pixloop/pkg/input"
)

var special = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyReturn,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

var punct = map[rune]input.Key{
	' ': input.KeySpace, '-': input.KeyMinus, '=': input.KeyEquals,
	'[': input.KeyLeftBracket, ']': input.KeyRightBracket, '\\': input.KeyBackslash,
	';': input.KeySemicolon, '\'': input.KeyApostrophe, '`': input.KeyGrave,
	',': input.KeyComma, '.': input.KeyPeriod, '/': input.KeySlash,
}

// translateKey returns the scancodes a key event stands for, modifiers
// included.
func translateKey(ev *tcell.EventKey) []input.Key {
	var out []input.Key
	mod := ev.Modifiers()
	if mod&tcell.ModCtrl != 0 {
		out = append(out, input.KeyLeftCtrl)
	}
	if mod&tcell.ModShift != 0 {
		out = append(out, input.KeyLeftShift)
	}
	if mod&tcell.ModAlt != 0 {
		out = append(out, input.KeyLeftAlt)
	}

	key := ev.Key()
	if k, ok := special[key]; ok {
		return append(out, k)
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if mod&tcell.ModCtrl == 0 {
			out = append(out, input.KeyLeftCtrl)
		}
		return append(out, input.KeyA+input.Key(key-tcell.KeyCtrlA))
	}
	if key != tcell.KeyRune {
		return out
	}

	r := ev.Rune()
	switch {
	case r >= 'a' && r <= 'z':
		out = append(out, input.KeyA+input.Key(r-'a'))
	case r >= 'A' && r <= 'Z':
		if mod&tcell.ModShift == 0 {
			out = append(out, input.KeyLeftShift)
		}
		out = append(out, input.KeyA+input.Key(r-'A'))
	case r == '0':
		out = append(out, input.Key0)
	case r >= '1' && r <= '9':
		out = append(out, input.Key1+input.Key(r-'1'))
	default:
		if k, ok := punct[r]; ok {
			out = append(out, k)
		}
	}
	return out
}

func translateButtons(m tcell.ButtonMask) uint32 {
	var mask uint32
	if m&tcell.Button1 != 0 {
		mask |= input.ButtonLeft.Mask()
	}
	if m&tcell.Button3 != 0 {
		mask |= input.ButtonMiddle.Mask()
	}
	if m&tcell.Button2 != 0 {
		mask |= input.ButtonRight.Mask()
	}
	if m&tcell.Button4 != 0 {
		mask |= input.ButtonX1.Mask()
	}
	if m&tcell.Button5 != 0 {
		mask |= input.ButtonX2.Mask()
	}
	return mask
}
