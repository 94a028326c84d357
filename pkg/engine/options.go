package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

// Clock supplies frame timestamps. The engine calls Now exactly twice per
// frame: once at frame start and once at frame end.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

type Option func(*Engine)

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// Stats summarises the frames run so far.
type Stats struct {
	Frames       uint64
	LastElapsed  float64
	TotalElapsed float64
}

// FPS is the mean frame rate over the whole run.
func (s Stats) FPS() float64 {
	if s.TotalElapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.TotalElapsed
}
