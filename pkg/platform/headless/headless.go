// Package headless is an engine backend without a window. It replays a
// script of raw input frames and captures every presented surface, which
// makes it the backend of choice for tests and recording playback.
package headless

import (
	"errors"
	"fmt"

	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

var ErrClosed = errors.New("headless: backend closed")

// Frame is the raw input reported for one frame.
type Frame struct {
	Keys  []input.Key
	Mouse engine.Mouse
	// Close reports a close request on this frame.
	Close bool
}

// Backend plays Script one frame per PollEvents call. Once the script is
// exhausted it reports a close request, unless Endless is set, in which
// case the last frame repeats.
type Backend struct {
	Script  []Frame
	Endless bool

	// OnPresent, when set, is called with every presented surface.
	OnPresent func(frame int, s *pixel.Surface) error

	// Failure injection.
	OpenErr    error
	PollErr    func(frame int) error
	PresentErr func(frame int) error

	cfg      engine.Config
	opened   bool
	closed   int
	frame    int
	cur      Frame
	last     []byte
	presents int
}

func New(script ...Frame) *Backend {
	return &Backend{Script: script}
}

func (b *Backend) Open(cfg engine.Config) error {
	if b.OpenErr != nil {
		return fmt.Errorf("headless: open texture: %w", b.OpenErr)
	}
	b.cfg = cfg
	b.opened = true
	b.frame = -1
	b.last = make([]byte, cfg.Width*cfg.Height*4)
	return nil
}

func (b *Backend) PollEvents() (bool, error) {
	if !b.opened || b.closed > 0 {
		return false, ErrClosed
	}
	b.frame++
	var err error
	if b.PollErr != nil {
		err = b.PollErr(b.frame)
	}
	switch {
	case b.frame < len(b.Script):
		b.cur = b.Script[b.frame]
	case b.Endless && len(b.Script) > 0:
		b.cur = b.Script[len(b.Script)-1]
	default:
		return false, err
	}
	return !b.cur.Close, err
}

func (b *Backend) Keyboard(dst *[input.KeyCount]bool) error {
	*dst = [input.KeyCount]bool{}
	for _, k := range b.cur.Keys {
		dst[k] = true
	}
	return nil
}

func (b *Backend) Mouse() (engine.Mouse, error) {
	return b.cur.Mouse, nil
}

func (b *Backend) Present(s *pixel.Surface) error {
	s.CopyRGBA(b.last)
	b.presents++
	var errs []error
	if b.PresentErr != nil {
		if err := b.PresentErr(b.frame); err != nil {
			errs = append(errs, err)
		}
	}
	if b.OnPresent != nil {
		if err := b.OnPresent(b.frame, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Backend) Close() error {
	b.closed++
	b.opened = false
	return nil
}

// LastFrame is the RGBA bytes of the most recently presented surface.
func (b *Backend) LastFrame() []byte { return b.last }

func (b *Backend) Presents() int         { return b.presents }
func (b *Backend) CloseCount() int       { return b.closed }
func (b *Backend) Config() engine.Config { return b.cfg }
