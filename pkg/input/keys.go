package input

import (
	"strconv"
	"strings"
)

// Key is a keyboard scancode using USB HID usage numbering. Every value in
// 0..255 addresses a slot, named or not.
type Key uint8

// KeyCount is the number of keyboard slots tracked each frame.
const KeyCount = 256

const (
	KeyUnknown Key = 0

	KeyA Key = 4 + iota - 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	_
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
)

const (
	KeyLeftCtrl Key = 224 + iota
	KeyLeftShift
	KeyLeftAlt
	KeyLeftMeta
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightMeta
)

var keyNames = func() [KeyCount]string {
	var n [KeyCount]string
	for i := 0; i < 26; i++ {
		n[int(KeyA)+i] = string(rune('A' + i))
	}
	for i := 0; i < 9; i++ {
		n[int(Key1)+i] = string(rune('1' + i))
	}
	n[Key0] = "0"
	for i := 0; i < 12; i++ {
		n[int(KeyF1)+i] = "F" + strconv.Itoa(i+1)
	}
	named := map[Key]string{
		KeyReturn: "Return", KeyEscape: "Escape", KeyBackspace: "Backspace", KeyTab: "Tab",
		KeySpace: "Space", KeyMinus: "Minus", KeyEquals: "Equals",
		KeyLeftBracket: "LeftBracket", KeyRightBracket: "RightBracket", KeyBackslash: "Backslash",
		KeySemicolon: "Semicolon", KeyApostrophe: "Apostrophe", KeyGrave: "Grave",
		KeyComma: "Comma", KeyPeriod: "Period", KeySlash: "Slash", KeyCapsLock: "CapsLock",
		KeyPrintScreen: "PrintScreen", KeyScrollLock: "ScrollLock", KeyPause: "Pause",
		KeyInsert: "Insert", KeyHome: "Home", KeyPageUp: "PageUp", KeyDelete: "Delete",
		KeyEnd: "End", KeyPageDown: "PageDown",
		KeyRight: "Right", KeyLeft: "Left", KeyDown: "Down", KeyUp: "Up",
		KeyLeftCtrl: "LeftCtrl", KeyLeftShift: "LeftShift", KeyLeftAlt: "LeftAlt", KeyLeftMeta: "LeftMeta",
		KeyRightCtrl: "RightCtrl", KeyRightShift: "RightShift", KeyRightAlt: "RightAlt", KeyRightMeta: "RightMeta",
	}
	for k, v := range named {
		n[k] = v
	}
	return n
}()

func (k Key) String() string {
	if name := keyNames[k]; name != "" {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Named reports whether k has a symbolic name.
func (k Key) Named() bool { return keyNames[k] != "" }

// ParseKey looks a key up by its String name, case-insensitively.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n != "" && strings.EqualFold(n, name) {
			return Key(i), true
		}
	}
	return KeyUnknown, false
}

// Button identifies one of the five tracked mouse buttons. In a raw mouse
// mask, button b is bit 1<<b.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// ButtonCount is the number of mouse button slots tracked each frame.
const ButtonCount = 5

func (b Button) Mask() uint32 { return 1 << b }

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	case ButtonX1:
		return "X1"
	case ButtonX2:
		return "X2"
	default:
		return "Button(" + strconv.Itoa(int(b)) + ")"
	}
}
