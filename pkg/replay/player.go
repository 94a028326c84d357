package replay

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"pixloop/pkg/engine"
	"pixloop/pkg/pixel"
	"pixloop/pkg/platform/headless"
)

// NewPlayer builds a headless backend that feeds the recorded input back to
// the engine and fails presentation on the first frame whose digest differs
// from the recording. The returned clock reproduces the recorded frame times.
func NewPlayer(rec *Recording) (*headless.Backend, engine.Clock) {
	script := make([]headless.Frame, len(rec.Frames))
	for i := range rec.Frames {
		f := &rec.Frames[i]
		script[i] = headless.Frame{Keys: f.DownKeys(), Mouse: f.Mouse, Close: f.Close}
	}
	b := headless.New(script...)
	scratch := make([]byte, rec.Header.Width*rec.Header.Height*4)
	b.OnPresent = func(frame int, s *pixel.Surface) error {
		if frame < 0 || frame >= len(rec.Frames) {
			return nil
		}
		if got := Digest(s, scratch); got != rec.Frames[frame].Digest {
			return fmt.Errorf("%w: frame %d", ErrDigestMismatch, frame)
		}
		return nil
	}
	return b, &playbackClock{rec: rec, t: rec.Header.Created}
}

type playbackClock struct {
	rec   *Recording
	t     time.Time
	ticks int
}

func (c *playbackClock) Now() time.Time {
	frame := c.ticks / 2
	if c.ticks%2 == 1 && frame < len(c.rec.Frames) {
		c.t = c.t.Add(time.Duration(math.Round(c.rec.Frames[frame].Elapsed * float64(time.Second))))
	}
	c.ticks++
	return c.t
}

// Verify replays rec through game and reports the first divergence.
func Verify(rec *Recording, game engine.Game, logger *log.Logger) (engine.Stats, error) {
	if err := rec.Header.Validate(); err != nil {
		return engine.Stats{}, err
	}
	b, clock := NewPlayer(rec)
	opts := []engine.Option{engine.WithClock(clock)}
	if logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	e, err := engine.New(rec.Header.Config(), b, opts...)
	if err != nil {
		return engine.Stats{}, err
	}
	err = e.Start(game)
	return e.Stats(), err
}
