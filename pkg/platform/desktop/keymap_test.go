package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"pixloop/pkg/input"
)

func TestKeymapIsInjective(t *testing.T) {
	seen := map[input.Key]ebiten.Key{}
	for eb, sc := range keymap {
		if sc == input.KeyUnknown {
			t.Fatalf("%v maps to the unknown slot", eb)
		}
		if prev, dup := seen[sc]; dup {
			t.Fatalf("%v and %v both map to %v", prev, eb, sc)
		}
		seen[sc] = eb
	}
}

func TestKeymapCoversCommonKeys(t *testing.T) {
	cases := map[ebiten.Key]input.Key{
		ebiten.KeyA:         input.KeyA,
		ebiten.KeyEscape:    input.KeyEscape,
		ebiten.KeyArrowUp:   input.KeyUp,
		ebiten.KeyShiftLeft: input.KeyLeftShift,
		ebiten.KeyDigit0:    input.Key0,
		ebiten.KeyF12:       input.KeyF12,
		ebiten.KeyNumpad0:   input.Key(98),
	}
	for eb, want := range cases {
		got, ok := Scancode(eb)
		if !ok || got != want {
			t.Fatalf("Scancode(%v) = %v, %v; want %v", eb, got, ok, want)
		}
	}
}

func TestButtonMapOrder(t *testing.T) {
	if buttonmap[input.ButtonLeft] != ebiten.MouseButtonLeft || buttonmap[input.ButtonRight] != ebiten.MouseButtonRight {
		t.Fatal("left/right buttons swapped")
	}
}
