// Package terminal presents the engine surface in a truecolor terminal with
// tcell. Every cell shows two vertically stacked window pixels using an
// upper half block, so one logical pixel covers ScaleX columns and ScaleY
// half-rows.
//
// Terminals report key presses but not releases. A key counts as down for
// Hold after its last press or autorepeat event.
package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

const DefaultHold = 150 * time.Millisecond

const upperHalf = '▀'

type Backend struct {
	// NewScreen creates the tcell screen; tests swap in a simulation screen.
	NewScreen func() (tcell.Screen, error)
	Hold      time.Duration
	Now       func() time.Time

	cfg    engine.Config
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	lastDown [input.KeyCount]time.Time
	buttons  uint32
	mouseX   int
	mouseY   int
	closed   bool
}

func New() *Backend {
	return &Backend{NewScreen: tcell.NewScreen, Hold: DefaultHold, Now: time.Now}
}

func (b *Backend) Name() string { return "terminal" }

func (b *Backend) Open(cfg engine.Config) error {
	if b.NewScreen == nil {
		b.NewScreen = tcell.NewScreen
	}
	if b.Now == nil {
		b.Now = time.Now
	}
	if b.Hold <= 0 {
		b.Hold = DefaultHold
	}
	screen, err := b.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	b.cfg = cfg
	b.screen = screen
	b.closed = false
	b.events = make(chan tcell.Event, 256)
	b.done = make(chan struct{})
	go pump(screen, b.events, b.done)
	return nil
}

// pump forwards events until the screen is finalized or done is closed.
func pump(s tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (b *Backend) PollEvents() (bool, error) {
	if b.screen == nil {
		return false, errors.New("terminal: screen released")
	}
	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				return false, nil
			}
			b.handle(ev)
		default:
			return !b.closed, nil
		}
	}
}

func (b *Backend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			b.closed = true
			return
		}
		now := b.Now()
		for _, k := range translateKey(ev) {
			b.lastDown[k] = now
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		b.mouseX, b.mouseY = x, y*2
		b.buttons = translateButtons(ev.Buttons())
	case *tcell.EventResize:
		b.screen.Sync()
	}
}

func (b *Backend) Keyboard(dst *[input.KeyCount]bool) error {
	now := b.Now()
	for i, t := range b.lastDown {
		dst[i] = !t.IsZero() && now.Sub(t) < b.Hold
	}
	return nil
}

func (b *Backend) Mouse() (engine.Mouse, error) {
	return engine.Mouse{Buttons: b.buttons, X: b.mouseX, Y: b.mouseY}, nil
}

func (b *Backend) Present(s *pixel.Surface) error {
	if b.screen == nil {
		return errors.New("terminal: screen released")
	}
	sx, sy := b.cfg.ScaleX, b.cfg.ScaleY
	cols := s.Width() * sx
	rows := (s.Height()*sy + 1) / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := s.Pixel(col/sx, (row*2)/sy)
			bottom := s.Pixel(col/sx, (row*2+1)/sy)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			b.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	b.screen.Show()
	return nil
}

func (b *Backend) Close() error {
	if b.screen != nil {
		close(b.done)
		b.screen.Fini()
		b.screen = nil
	}
	return nil
}

func toTcell(c pixel.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

var _ engine.Backend = (*Backend)(nil)
