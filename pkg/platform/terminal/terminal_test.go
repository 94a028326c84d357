package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func openSim(t *testing.T, cfg engine.Config) (*Backend, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	clock := &fakeClock{t: time.Unix(100, 0)}
	b := &Backend{
		NewScreen: func() (tcell.Screen, error) { return sim, nil },
		Hold:      100 * time.Millisecond,
		Now:       clock.now,
	}
	if err := b.Open(cfg); err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b, sim, clock
}

// waitEvents blocks until the pump goroutine has forwarded n events.
func waitEvents(t *testing.T, b *Backend, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for len(b.events) < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d events", n)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

var cfg = engine.Config{Title: "term", Width: 4, Height: 4, ScaleX: 1, ScaleY: 1}

func TestKeyHeldUntilHoldExpires(t *testing.T) {
	b, sim, clock := openSim(t, cfg)
	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	waitEvents(t, b, 1)

	if open, err := b.PollEvents(); !open || err != nil {
		t.Fatalf("poll: %v %v", open, err)
	}
	var keys [input.KeyCount]bool
	if err := b.Keyboard(&keys); err != nil {
		t.Fatal(err)
	}
	if !keys[input.KeyW] {
		t.Fatal("w should be down right after its event")
	}

	clock.t = clock.t.Add(150 * time.Millisecond)
	if err := b.Keyboard(&keys); err != nil {
		t.Fatal(err)
	}
	if keys[input.KeyW] {
		t.Fatal("w should be up after the hold window")
	}
}

func TestCtrlCRequestsClose(t *testing.T) {
	b, sim, _ := openSim(t, cfg)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	waitEvents(t, b, 1)
	if open, _ := b.PollEvents(); open {
		t.Fatal("expected close request")
	}
}

func TestMouseReportsWindowPixels(t *testing.T) {
	b, sim, _ := openSim(t, cfg)
	sim.InjectMouse(3, 1, tcell.Button1|tcell.Button2, tcell.ModNone)
	waitEvents(t, b, 1)
	b.PollEvents()
	m, err := b.Mouse()
	if err != nil {
		t.Fatal(err)
	}
	if m.X != 3 || m.Y != 2 {
		t.Fatalf("unexpected position %d,%d", m.X, m.Y)
	}
	want := input.ButtonLeft.Mask() | input.ButtonRight.Mask()
	if m.Buttons != want {
		t.Fatalf("unexpected buttons %b", m.Buttons)
	}
}

func TestPresentUsesHalfBlocks(t *testing.T) {
	b, sim, _ := openSim(t, cfg)
	s := pixel.NewSurface(4, 4)
	s.Clear(pixel.Black)
	s.Draw(0, 0, pixel.Red)
	s.Draw(0, 1, pixel.Blue)
	if err := b.Present(s); err != nil {
		t.Fatal(err)
	}
	cells, w, _ := sim.GetContents()
	c := cells[0]
	if len(c.Runes) == 0 || c.Runes[0] != upperHalf {
		t.Fatalf("unexpected rune %q", c.Runes)
	}
	fg, bg, _ := c.Style.Decompose()
	if r, _, _ := fg.RGB(); r != 255 {
		t.Fatalf("top pixel should be red, got %v", fg)
	}
	if _, _, bb := bg.RGB(); bb != 255 {
		t.Fatalf("bottom pixel should be blue, got %v", bg)
	}
	other := cells[1+w]
	if fg, _, _ := other.Style.Decompose(); fg != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("expected black at cell (1,1), got %v", fg)
	}
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want []input.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), []input.Key{input.KeyA}},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), []input.Key{input.KeyLeftShift, input.KeyQ}},
		{tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), []input.Key{input.Key7}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []input.Key{input.KeySpace}},
		{tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), []input.Key{input.KeyLeftCtrl, input.KeyZ}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []input.Key{input.KeyReturn}},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), []input.Key{input.KeyLeftShift, input.KeyUp}},
	}
	for _, tc := range cases {
		got := translateKey(tc.ev)
		if len(got) != len(tc.want) {
			t.Fatalf("%v: got %v want %v", tc.ev.Name(), got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%v: got %v want %v", tc.ev.Name(), got, tc.want)
			}
		}
	}
}
