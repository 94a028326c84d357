// Package engine runs the frame loop: it owns the pixel surface and input
// state, samples input from a Backend every frame, calls the Game's Update
// and pushes the surface back to the Backend for display.
//
// The engine is single threaded. All methods must be called from the
// goroutine that runs Start, including from inside Game callbacks.
package engine

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

// Config is fixed at creation. The window is Width*ScaleX by Height*ScaleY
// real pixels.
type Config struct {
	Title  string
	Width  int
	Height int
	ScaleX int
	ScaleY int
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ScaleX <= 0 || c.ScaleY <= 0 {
		return fmt.Errorf("%w: scale %dx%d", ErrInvalidConfig, c.ScaleX, c.ScaleY)
	}
	return nil
}

// WindowSize is the size of the presented image in real pixels.
func (c Config) WindowSize() (int, int) {
	return c.Width * c.ScaleX, c.Height * c.ScaleY
}

type Engine struct {
	cfg     Config
	backend Backend
	log     *log.Logger
	clock   Clock

	surface *pixel.Surface
	input   input.State
	raw     [input.KeyCount]bool

	game    Game
	state   Lifecycle
	elapsed float64
	stats   Stats
	exit    ExitReason
	err     error
}

// New validates cfg, allocates the surface and opens the backend. The
// returned engine is Ready.
func New(cfg Config, backend Backend, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrResourceCreation)
	}
	e := &Engine{
		cfg:     cfg,
		backend: backend,
		log:     log.Default(),
		clock:   wallClock{},
		state:   Uninitialized,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.surface = pixel.NewSurface(cfg.Width, cfg.Height)
	if err := backend.Open(cfg); err != nil {
		e.log.Error("backend open failed", "title", cfg.Title, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrResourceCreation, err)
	}
	e.setState(Ready)
	w, h := cfg.WindowSize()
	e.log.Info("engine ready", "title", cfg.Title, "logical", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "window", fmt.Sprintf("%dx%d", w, h))
	return e, nil
}

// Start runs game to completion and then releases every engine resource.
// It returns nil when the loop ended because of a close request or Stop,
// otherwise the joined errors of the failing iteration.
func (e *Engine) Start(game Game) error {
	if e.state != Ready {
		return fmt.Errorf("%w: state is %s", ErrNotReady, e.state)
	}
	if game == nil {
		game = Funcs{}
	}
	e.game = game

	if err := game.Create(e); err != nil {
		e.exit = ExitCreateFailed
		e.err = fmt.Errorf("%w: create: %w", ErrUserCallback, err)
		e.log.Error("create callback failed", "err", err)
		e.setState(ShuttingDown)
		game.Destroy(e)
		if cerr := e.Close(); cerr != nil {
			e.log.Warn("release after failed create", "err", cerr)
		}
		return e.err
	}

	e.setState(Running)
	e.elapsed = 0
	if d, ok := e.backend.(Driver); ok {
		if err := d.Drive(e.frame); err != nil {
			e.err = errors.Join(e.err, fmt.Errorf("%w: driver: %w", ErrPresentation, err))
			if e.exit == ExitNone {
				e.exit = ExitFailed
			}
		}
	} else {
		for e.frame() {
		}
	}

	e.setState(ShuttingDown)
	game.Destroy(e)
	if err := e.Close(); err != nil {
		e.log.Warn("release failed", "err", err)
	}
	e.log.Info("engine stopped", "reason", e.exit, "frames", e.stats.Frames, "fps", fmt.Sprintf("%.1f", e.stats.FPS()))
	return e.err
}

// frame runs one full iteration. Every step runs even if an earlier one
// failed; the result decides whether another iteration follows.
func (e *Engine) frame() bool {
	start := e.clock.Now()
	var errs []error

	open, err := e.backend.PollEvents()
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: poll events: %w", ErrPresentation, err))
	}

	if err := e.backend.Keyboard(&e.raw); err != nil {
		errs = append(errs, fmt.Errorf("%w: keyboard: %w", ErrPresentation, err))
	}
	e.input.UpdateKeyboard(&e.raw)

	m, err := e.backend.Mouse()
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: mouse: %w", ErrPresentation, err))
	}
	e.input.UpdateMouse(m.Buttons, m.X, m.Y, e.cfg.ScaleX, e.cfg.ScaleY)

	stopped := false
	if err := e.game.Update(e, e.elapsed); err != nil {
		if errors.Is(err, Stop) {
			stopped = true
		} else {
			errs = append(errs, fmt.Errorf("%w: update: %w", ErrUserCallback, err))
		}
	}

	if err := e.backend.Present(e.surface); err != nil {
		errs = append(errs, fmt.Errorf("%w: present: %w", ErrPresentation, err))
	}

	end := e.clock.Now()
	e.elapsed = end.Sub(start).Seconds()
	e.stats.Frames++
	e.stats.LastElapsed = e.elapsed
	e.stats.TotalElapsed += e.elapsed

	switch {
	case len(errs) > 0:
		e.exit = ExitFailed
		e.err = errors.Join(errs...)
		e.log.Error("frame failed", "frame", e.stats.Frames, "err", e.err)
		return false
	case !open:
		e.exit = ExitClosed
		e.log.Debug("close requested", "frame", e.stats.Frames)
		return false
	case stopped:
		e.exit = ExitStopped
		return false
	}
	return true
}

// Close releases the backend. It is called by Start; calling it directly is
// only needed for an engine that was never started. Closing a destroyed
// engine is a no-op.
func (e *Engine) Close() error {
	if e.state == Destroyed {
		return nil
	}
	err := e.backend.Close()
	e.surface = nil
	e.setState(Destroyed)
	return err
}

func (e *Engine) setState(s Lifecycle) {
	e.log.Debug("lifecycle", "from", e.state, "to", s)
	e.state = s
}

func (e *Engine) Config() Config         { return e.cfg }
func (e *Engine) Title() string          { return e.cfg.Title }
func (e *Engine) Width() int             { return e.cfg.Width }
func (e *Engine) Height() int            { return e.cfg.Height }
func (e *Engine) State() Lifecycle       { return e.state }
func (e *Engine) Stats() Stats           { return e.stats }
func (e *Engine) ExitReason() ExitReason { return e.exit }
func (e *Engine) Logger() *log.Logger    { return e.log }

// Surface is the frame buffer presented after every Update. It is nil once
// the engine is destroyed.
func (e *Engine) Surface() *pixel.Surface { return e.surface }

func (e *Engine) Input() *input.State { return &e.input }

func (e *Engine) Clear(c pixel.Color)                      { e.surface.Clear(c) }
func (e *Engine) Draw(x, y int, c pixel.Color)             { e.surface.Draw(x, y, c) }
func (e *Engine) DrawRect(x, y, dx, dy int, c pixel.Color) { e.surface.DrawRect(x, y, dx, dy, c) }

func (e *Engine) Key(k input.Key) input.KeyState       { return e.input.Key(k) }
func (e *Engine) Button(b input.Button) input.KeyState { return e.input.Button(b) }
func (e *Engine) Mouse() (int, int)                    { return e.input.Mouse() }
