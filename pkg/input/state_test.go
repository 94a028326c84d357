package input

import "testing"

type observed struct{ pressed, held, released bool }

func (o observed) String() string {
	b := func(v bool) byte {
		if v {
			return 'T'
		}
		return 'F'
	}
	return string([]byte{'(', b(o.pressed), ',', b(o.held), ',', b(o.released), ')'})
}

func runKeyboard(s *State, k Key, raw []bool) []observed {
	out := make([]observed, 0, len(raw))
	var frame [KeyCount]bool
	for _, down := range raw {
		frame[k] = down
		s.UpdateKeyboard(&frame)
		ks := s.Key(k)
		out = append(out, observed{ks.Pressed, ks.Held, ks.Released})
	}
	return out
}

func TestKeyboardEdgeScenario(t *testing.T) {
	var s State
	got := runKeyboard(&s, KeyK, []bool{false, false, true, true, false})
	want := []observed{
		{false, false, false},
		{false, false, false},
		{true, true, false},
		{false, true, false},
		{false, false, true},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d: got %v want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestHeldForNFrames(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		var s State
		raw := make([]bool, 0, n+1)
		for i := 0; i < n; i++ {
			raw = append(raw, true)
		}
		raw = append(raw, false)
		got := runKeyboard(&s, KeySpace, raw)

		pressed := 0
		for i := 0; i < n; i++ {
			if got[i].pressed {
				pressed++
			}
			if !got[i].held || got[i].released {
				t.Fatalf("n=%d frame %d: %v", n, i, got[i])
			}
		}
		if pressed != 1 || !got[0].pressed {
			t.Fatalf("n=%d: pressed should fire once on the first frame, got %v", n, got)
		}
		last := got[n]
		if !last.released || last.held || last.pressed {
			t.Fatalf("n=%d: release frame got %v", n, last)
		}
	}
}

func TestUntouchedKeysStayIdle(t *testing.T) {
	var s State
	runKeyboard(&s, KeyA, []bool{true, false, true, true, false})
	for k := 0; k < KeyCount; k++ {
		if Key(k) == KeyA {
			continue
		}
		if ks := s.Key(Key(k)); ks != (KeyState{}) {
			t.Fatalf("key %v changed: %+v", Key(k), ks)
		}
	}
}

func TestPressedAndReleasedNeverTogether(t *testing.T) {
	var s State
	pattern := []bool{true, false, true, false, false, true, true, false, true}
	for i, o := range runKeyboard(&s, KeyZ, pattern) {
		if o.pressed && o.released {
			t.Fatalf("frame %d: pressed and released both set", i)
		}
	}
}

func TestEdgesAreNotQueued(t *testing.T) {
	var s State
	var frame [KeyCount]bool
	frame[KeyEscape] = true
	s.UpdateKeyboard(&frame)
	s.UpdateKeyboard(&frame)
	if s.Key(KeyEscape).Pressed {
		t.Fatal("pressed edge survived into a second frame")
	}
	if !s.Key(KeyEscape).Held {
		t.Fatal("key should still be held")
	}
}

func TestMouseButtonsAndPosition(t *testing.T) {
	var s State
	s.UpdateMouse(ButtonLeft.Mask()|ButtonX2.Mask(), 17, 9, 4, 3)
	if !s.Button(ButtonLeft).Pressed || !s.Button(ButtonX2).Pressed {
		t.Fatal("expected left and x2 pressed")
	}
	if s.Button(ButtonRight).Held {
		t.Fatal("right should be up")
	}
	if x, y := s.Mouse(); x != 4 || y != 3 {
		t.Fatalf("unexpected logical mouse position %d,%d", x, y)
	}

	s.UpdateMouse(ButtonX2.Mask(), 0, 0, 4, 3)
	if !s.Button(ButtonLeft).Released || s.Button(ButtonLeft).Held {
		t.Fatalf("left should be released: %+v", s.Button(ButtonLeft))
	}
	if s.Button(ButtonX2).Pressed || !s.Button(ButtonX2).Held {
		t.Fatalf("x2 should be held without a new edge: %+v", s.Button(ButtonX2))
	}
	if s.Button(Button(9)) != (KeyState{}) {
		t.Fatal("out of range button should be idle")
	}
}

func TestModifiersAndAnyPressed(t *testing.T) {
	var s State
	var frame [KeyCount]bool
	frame[KeyRightCtrl] = true
	frame[KeyC] = true
	s.UpdateKeyboard(&frame)
	if !s.Ctrl() || s.Shift() || s.Alt() {
		t.Fatal("unexpected modifier state")
	}
	if k, ok := s.AnyPressed(); !ok || k != KeyC {
		t.Fatalf("AnyPressed = %v, %v", k, ok)
	}
}

func TestKeyNames(t *testing.T) {
	cases := map[Key]string{KeyA: "A", KeyZ: "Z", Key0: "0", KeyF10: "F10", KeyUp: "Up", KeyLeftShift: "LeftShift"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", k, got, want)
		}
		back, ok := ParseKey(want)
		if !ok || back != k {
			t.Fatalf("ParseKey(%q) = %v, %v", want, back, ok)
		}
	}
	if KeyA != 4 || KeyReturn != 40 || KeyF1 != 58 || KeyUp != 82 || KeyLeftCtrl != 224 {
		t.Fatal("scancode numbering drifted")
	}
	if got := Key(200).String(); got != "Key(200)" {
		t.Fatalf("unnamed key string: %q", got)
	}
	if _, ok := ParseKey("NoSuchKey"); ok {
		t.Fatal("ParseKey accepted an unknown name")
	}
}
