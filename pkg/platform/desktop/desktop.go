// Package desktop presents the engine surface in a native window through
// ebiten. The surface is uploaded into one streamed texture every frame and
// drawn magnified by the configured per-axis scale with nearest filtering.
package desktop

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

type Backend struct {
	cfg     engine.Config
	texture *ebiten.Image
	pixels  []byte
	pressed []ebiten.Key
	step    func() bool
}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "desktop" }

func (b *Backend) Open(cfg engine.Config) (err error) {
	w, h := cfg.WindowSize()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	// The loop is unpaced: one tick per rendered frame, no vsync.
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	defer func() {
		if r := recover(); r != nil {
			b.release()
			err = fmt.Errorf("desktop: create texture %dx%d: %v", cfg.Width, cfg.Height, r)
		}
	}()
	b.texture = ebiten.NewImage(cfg.Width, cfg.Height)
	b.pixels = make([]byte, cfg.Width*cfg.Height*4)
	b.pressed = make([]ebiten.Key, 0, 16)
	b.cfg = cfg
	return nil
}

func (b *Backend) PollEvents() (bool, error) {
	return !ebiten.IsWindowBeingClosed(), nil
}

func (b *Backend) Keyboard(dst *[input.KeyCount]bool) error {
	*dst = [input.KeyCount]bool{}
	b.pressed = inpututil.AppendPressedKeys(b.pressed[:0])
	for _, k := range b.pressed {
		if sc, ok := keymap[k]; ok {
			dst[sc] = true
		}
	}
	return nil
}

func (b *Backend) Mouse() (engine.Mouse, error) {
	var m engine.Mouse
	for i, eb := range buttonmap {
		if ebiten.IsMouseButtonPressed(eb) {
			m.Buttons |= input.Button(i).Mask()
		}
	}
	m.X, m.Y = ebiten.CursorPosition()
	return m, nil
}

func (b *Backend) Present(s *pixel.Surface) error {
	if b.texture == nil {
		return errors.New("desktop: texture released")
	}
	if s.CopyRGBA(b.pixels) == 0 {
		return fmt.Errorf("desktop: surface %dx%d does not match texture", s.Width(), s.Height())
	}
	b.texture.WritePixels(b.pixels)
	return nil
}

// Drive hands the loop to ebiten. Each ebiten tick runs one engine frame;
// the uploaded texture is shown from Draw.
func (b *Backend) Drive(step func() bool) error {
	b.step = step
	if err := ebiten.RunGame(&game{b: b}); err != nil {
		return fmt.Errorf("desktop: run game loop: %w", err)
	}
	return nil
}

func (b *Backend) Close() error {
	b.release()
	return nil
}

func (b *Backend) release() {
	if b.texture != nil {
		b.texture.Deallocate()
		b.texture = nil
	}
	b.pixels = nil
}

type game struct {
	b *Backend
}

func (g *game) Update() error {
	if !g.b.step() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.b.texture == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.b.cfg.ScaleX), float64(g.b.cfg.ScaleY))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.b.texture, op)
}

// Layout keeps the screen at window resolution so CursorPosition reports
// window pixels, which the engine divides by the scale.
func (g *game) Layout(_, _ int) (int, int) {
	return g.b.cfg.WindowSize()
}

var (
	_ engine.Backend = (*Backend)(nil)
	_ engine.Driver  = (*Backend)(nil)
)
