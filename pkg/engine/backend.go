package engine

import (
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

// Mouse is the raw mouse sample for one frame. Button b is down when bit
// 1<<b of Buttons is set; X and Y are in window pixels.
type Mouse struct {
	Buttons uint32
	X       int
	Y       int
}

// Backend is the presentation and input platform the engine drives. All
// methods are called from the goroutine running Start.
type Backend interface {
	// Open creates the window, renderer and a streamed texture of
	// cfg.Width x cfg.Height logical pixels shown at cfg.ScaleX x cfg.ScaleY.
	// On failure anything already created must be released before returning.
	Open(cfg Config) error
	// PollEvents drains pending platform events. It returns false once the
	// user asked to close the window.
	PollEvents() (bool, error)
	// Keyboard writes the raw down state of every scancode into dst.
	Keyboard(dst *[input.KeyCount]bool) error
	Mouse() (Mouse, error)
	// Present uploads the surface into the texture and shows it.
	Present(s *pixel.Surface) error
	Close() error
}

// Driver is implemented by backends that must own the OS main loop. Drive
// calls step once per frame until it returns false.
type Driver interface {
	Drive(step func() bool) error
}
