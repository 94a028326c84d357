package replay

import (
	"time"

	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

// Recorder wraps a backend and captures every frame the engine runs. Pass it
// to engine.New in place of the wrapped backend and to engine.WithClock so
// frame times are captured too.
type Recorder struct {
	inner   engine.Backend
	clock   engine.Clock
	rec     Recording
	ticks   uint64
	start   time.Time
	scratch []byte
}

func NewRecorder(inner engine.Backend) *Recorder {
	return &Recorder{inner: inner, clock: wallClock{}}
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// Recording returns what has been captured so far.
func (r *Recorder) Recording() *Recording { return &r.rec }

func (r *Recorder) Open(cfg engine.Config) error {
	if err := r.inner.Open(cfg); err != nil {
		return err
	}
	r.rec = Recording{Header: Header{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		ScaleX:  cfg.ScaleX,
		ScaleY:  cfg.ScaleY,
		Created: time.Now(),
	}}
	r.ticks = 0
	r.scratch = make([]byte, cfg.Width*cfg.Height*4)
	return nil
}

func (r *Recorder) PollEvents() (bool, error) {
	open, err := r.inner.PollEvents()
	r.rec.Frames = append(r.rec.Frames, Frame{Close: !open})
	return open, err
}

func (r *Recorder) Keyboard(dst *[input.KeyCount]bool) error {
	err := r.inner.Keyboard(dst)
	if f := r.current(); f != nil {
		for k, down := range dst {
			if down {
				f.SetKey(input.Key(k), true)
			}
		}
	}
	return err
}

func (r *Recorder) Mouse() (engine.Mouse, error) {
	m, err := r.inner.Mouse()
	if f := r.current(); f != nil {
		f.Mouse = m
	}
	return m, err
}

func (r *Recorder) Present(s *pixel.Surface) error {
	if f := r.current(); f != nil {
		f.Digest = Digest(s, r.scratch)
	}
	return r.inner.Present(s)
}

func (r *Recorder) Close() error { return r.inner.Close() }

// Drive forwards to the wrapped backend when it owns the main loop.
func (r *Recorder) Drive(step func() bool) error {
	if d, ok := r.inner.(engine.Driver); ok {
		return d.Drive(step)
	}
	for step() {
	}
	return nil
}

// Now implements engine.Clock. Calls alternate between frame start and
// frame end; each end stamps the elapsed time on the current frame.
func (r *Recorder) Now() time.Time {
	now := r.clock.Now()
	if r.ticks%2 == 0 {
		r.start = now
	} else if f := r.current(); f != nil {
		f.Elapsed = now.Sub(r.start).Seconds()
	}
	r.ticks++
	return now
}

func (r *Recorder) current() *Frame {
	if len(r.rec.Frames) == 0 {
		return nil
	}
	return &r.rec.Frames[len(r.rec.Frames)-1]
}

var (
	_ engine.Backend = (*Recorder)(nil)
	_ engine.Driver  = (*Recorder)(nil)
	_ engine.Clock   = (*Recorder)(nil)
)
