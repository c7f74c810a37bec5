// Package headless runs the pong simulation without any output device.
// The left paddle follows the ball and a parked ball is served at once,
// which makes it useful for soak runs and for checking configurations.
package headless

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/audio"
	"github.com/vovakirdan/pong/internal/pong"
	"github.com/vovakirdan/pong/internal/registry"
)

// Summary describes a finished headless session.
type Summary struct {
	Left, Right int
	Ticks       uint64
	Hits        int
	MaxSpeed    float64
}

// Session couples a simulation with its driver and autopilot.
type Session struct {
	sim     *pong.Simulation
	driver  *pong.Driver
	input   *pong.Input
	summary Summary
}

// NewSession creates a session that reports events to events, which may be nil.
func NewSession(opts registry.Options, events func(pong.Event)) *Session {
	s := &Session{}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s.sim = pong.New(opts.Game,
		pong.WithRand(pong.NewRand(opts.Runtime.Seed)),
		pong.WithLogger(logger),
		pong.WithEvents(func(e pong.Event) {
			s.record(e)
			if events != nil {
				events(e)
			}
		}),
	)
	s.driver = pong.NewDriver(s.sim)
	s.input = pong.NewInput(s.sim)
	return s
}

// Autopilot serves a parked ball and keeps the left paddle level with it.
func (s *Session) Autopilot() {
	if s.sim.Ball().Parked() {
		s.input.Activate()
	}
	s.sim.SetPaddleY(0, s.sim.Ball().Box.Center.Y)
}

// Step runs the autopilot and ticks the driver at now.
func (s *Session) Step(now time.Time) {
	s.Autopilot()
	s.driver.Tick(now)
}

// Run ticks at tickRate until ctx is done.
func (s *Session) Run(ctx context.Context, tickRate int) error {
	err := s.driver.Run(ctx, tickRate, s.Autopilot)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// Summary returns the statistics gathered so far.
func (s *Session) Summary() Summary {
	sum := s.summary
	sum.Left, sum.Right = s.sim.Scores()
	sum.Ticks = s.driver.Ticks()
	return sum
}

// Simulation exposes the running simulation.
func (s *Session) Simulation() *pong.Simulation {
	return s.sim
}

func (s *Session) record(e pong.Event) {
	if e.Kind == pong.EventPaddleHit {
		s.summary.Hits++
	}
	if e.Speed > s.summary.MaxSpeed {
		s.summary.MaxSpeed = e.Speed
	}
}

// Frontend runs sessions with no display.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "headless" }

// Title returns a human-readable description.
func (Frontend) Title() string { return "No display, self-playing (use with --duration)" }

// Run plays until ctx is done or the duration elapses.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	player := audio.Open(opts.Sound, logger)
	defer player.Close()

	session := NewSession(opts, player.Handle)
	logger.Info("headless session started", "fps", opts.Runtime.TickRate, "duration", opts.Duration)

	err := session.Run(ctx, opts.Runtime.TickRate)

	sum := session.Summary()
	logger.Info("headless session ended",
		"left", sum.Left,
		"right", sum.Right,
		"ticks", sum.Ticks,
		"hits", sum.Hits,
		"max_speed", sum.MaxSpeed,
	)
	return err
}

func init() {
	registry.Register("headless", func() registry.Frontend {
		return Frontend{}
	})
}
