// Package input turns raw, continuously polled keyboard and mouse state into
// per-frame pressed / held / released edges.
//
// Edges are not queued: each slot only holds the result of the latest
// Update, so a consumer that skips a frame loses that frame's edges.
package input

// KeyState is the per-frame view of one key or mouse button.
type KeyState struct {
	// Pressed is true only on the frame the key went from up to down.
	Pressed bool
	// Held is true on every frame the key is down, including the pressed frame.
	Held bool
	// Released is true only on the frame the key went from down to up.
	Released bool
}

// step advances s given the previous and current raw state of its slot.
func (s *KeyState) step(prev, cur bool) {
	s.Pressed = false
	s.Released = false
	if cur == prev {
		return
	}
	if cur {
		s.Pressed = !s.Held
		s.Held = true
		return
	}
	s.Released = true
	s.Held = false
}

// State holds the previous-frame raw snapshot and the derived KeyStates for
// every keyboard slot and mouse button, plus the logical mouse position.
type State struct {
	prevKeys    [KeyCount]bool
	prevButtons uint32

	keys    [KeyCount]KeyState
	buttons [ButtonCount]KeyState

	mouseX int
	mouseY int
}

// UpdateKeyboard diffs raw against the previous frame for all 256 slots.
func (s *State) UpdateKeyboard(raw *[KeyCount]bool) {
	for i := range s.keys {
		s.keys[i].step(s.prevKeys[i], raw[i])
		s.prevKeys[i] = raw[i]
	}
}

// UpdateMouse diffs the raw button mask against the previous frame and stores
// the cursor position divided by the per-axis magnification.
func (s *State) UpdateMouse(mask uint32, rawX, rawY, scaleX, scaleY int) {
	for i := range s.buttons {
		bit := Button(i).Mask()
		s.buttons[i].step(s.prevButtons&bit != 0, mask&bit != 0)
	}
	s.prevButtons = mask
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	s.mouseX = rawX / scaleX
	s.mouseY = rawY / scaleY
}

func (s *State) Key(k Key) KeyState { return s.keys[k] }
func (s *State) Button(b Button) KeyState {
	if int(b) >= ButtonCount {
		return KeyState{}
	}
	return s.buttons[b]
}

// Mouse returns the cursor position in logical pixels.
func (s *State) Mouse() (int, int) { return s.mouseX, s.mouseY }

// Raw reports the raw keyboard state recorded for the current frame.
func (s *State) Raw(k Key) bool { return s.prevKeys[k] }

// RawButtons reports the raw mouse mask recorded for the current frame.
func (s *State) RawButtons() uint32 { return s.prevButtons }

// AnyPressed returns the first key with a rising edge this frame.
func (s *State) AnyPressed() (Key, bool) {
	for i := range s.keys {
		if s.keys[i].Pressed {
			return Key(i), true
		}
	}
	return KeyUnknown, false
}

// Ctrl, Shift and Alt combine the left and right modifier keys.
func (s *State) Ctrl() bool  { return s.keys[KeyLeftCtrl].Held || s.keys[KeyRightCtrl].Held }
func (s *State) Shift() bool { return s.keys[KeyLeftShift].Held || s.keys[KeyRightShift].Held }
func (s *State) Alt() bool   { return s.keys[KeyLeftAlt].Held || s.keys[KeyRightAlt].Held }
