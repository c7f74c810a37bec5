// Package pong implements the ball-and-paddle simulation: one ball, two
// paddles, elapsed-time integration, paddle collisions and scoring.
//
// The simulation knows nothing about terminals or windows. Front-ends draw it
// through a Canvas, feed it through Input and advance it with a Driver.
package pong

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// launchUpThreshold decides the vertical launch sign: a draw above it serves
// downward, anything else serves upward. Draws are in [0, 1), so every serve
// goes upward. Kept as observed behavior; a 50/50 split would use 0.5.
const launchUpThreshold = 5.0

// Ball is the single moving box of the game.
type Ball struct {
	Box      core.Box
	Velocity core.Vector
}

// Parked reports whether the ball is waiting for a serve.
func (b *Ball) Parked() bool {
	return b.Velocity.IsZero()
}

// Paddle is a box that deflects the ball and accumulates points.
type Paddle struct {
	Box   core.Box
	Score int
}

// Renderer receives the redraw signal at the end of every Update.
type Renderer interface {
	Render(s *Simulation)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(s *Simulation)

// Render calls f(s).
func (f RendererFunc) Render(s *Simulation) { f(s) }

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the random source used for serves and paddle spin.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithRenderer sets the redraw target.
func WithRenderer(r Renderer) Option {
	return func(s *Simulation) { s.renderer = r }
}

// WithEvents registers a callback for gameplay events.
func WithEvents(fn func(Event)) Option {
	return func(s *Simulation) { s.onEvent = fn }
}

// WithLogger sets the logger used for serve and score messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// Simulation owns the ball and both paddles and advances them over time.
// It is not safe for concurrent use; front-ends call it from one goroutine.
type Simulation struct {
	cfg     config.PongConfig
	field   core.Vector
	ball    Ball
	paddles [2]Paddle

	rng      *rand.Rand
	renderer Renderer
	onEvent  func(Event)
	logger   *log.Logger
}

// New creates a simulation for the configured field with both paddles
// centered vertically and the ball parked in the middle.
func New(cfg config.PongConfig, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		field: core.NewVector(cfg.Field.Width, cfg.Field.Height),
		ball: Ball{
			Box: core.NewBox(cfg.Ball.Width, cfg.Ball.Height),
		},
	}
	for i := range s.paddles {
		s.paddles[i].Box = core.NewBox(cfg.Paddles.Width, cfg.Paddles.Height)
	}
	s.paddles[0].Box.Center = core.NewVector(cfg.Paddles.Inset, s.field.Y/2)
	s.paddles[1].Box.Center = core.NewVector(s.field.X-cfg.Paddles.Inset, s.field.Y/2)

	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.Reset()
	return s
}

// Field returns the width and height of the play field.
func (s *Simulation) Field() core.Vector {
	return s.field
}

// Ball returns the ball. Callers may read it freely; writes bypass the rules.
func (s *Simulation) Ball() *Ball {
	return &s.ball
}

// Paddle returns paddle i: 0 is the left paddle, 1 the right one.
func (s *Simulation) Paddle(i int) *Paddle {
	return &s.paddles[i]
}

// Scores returns the left and right scores.
func (s *Simulation) Scores() (left, right int) {
	return s.paddles[0].Score, s.paddles[1].Score
}

// SetPaddleY moves the center of paddle i to y.
func (s *Simulation) SetPaddleY(i int, y float64) {
	s.paddles[i].Box.Center.Y = y
}

// Reset parks the ball in the middle of the field.
func (s *Simulation) Reset() {
	s.ball.Box.Center = core.NewVector(s.field.X/2, s.field.Y/2)
	s.ball.Velocity = core.Vector{}
}

// Start serves a parked ball. It does nothing while the ball is moving.
func (s *Simulation) Start() {
	if !s.ball.Parked() {
		return
	}

	v := &s.ball.Velocity
	v.X = s.cfg.Ball.LaunchX * sign(s.rng.Float64() > 0.5)
	v.Y = s.cfg.Ball.LaunchY * sign(s.rng.Float64() > launchUpThreshold)
	v.SetLen(s.cfg.Ball.ServeSpeed)

	s.logger.Debug("serve", "vx", v.X, "vy", v.Y)
	s.emit(Event{Kind: EventServe, Paddle: -1, Speed: v.Len()})
}

// Collide deflects the ball off the paddle when their boxes overlap.
// A hit reverses the horizontal velocity, kicks the vertical velocity by a
// random amount in [-spin/2, spin/2) and raises the speed by the speed-up
// factor. The ball is not pushed out of the paddle.
func (s *Simulation) Collide(p *Paddle, b *Ball) {
	if !p.Box.Overlaps(b.Box) {
		return
	}

	speed := b.Velocity.Len()
	b.Velocity.X = -b.Velocity.X
	b.Velocity.Y += s.cfg.Ball.Spin * (s.rng.Float64() - 0.5)
	b.Velocity.SetLen(speed * s.cfg.Ball.SpeedUp)

	s.emit(Event{Kind: EventPaddleHit, Paddle: s.paddleIndex(p), Speed: b.Velocity.Len()})
}

// Update advances the game by dt seconds.
func (s *Simulation) Update(dt float64) {
	b := &s.ball
	b.Box.Center = b.Box.Center.Add(b.Velocity.Scale(dt))

	// The point goes to paddle 0 when the ball leaves moving left and to
	// paddle 1 otherwise, whichever side it crossed.
	if b.Box.Left() < 0 || b.Box.Right() > s.field.X {
		scorer := 1
		if b.Velocity.X < 0 {
			scorer = 0
		}
		s.paddles[scorer].Score++

		left, right := s.Scores()
		s.logger.Debug("point", "paddle", scorer, "left", left, "right", right)
		s.emit(Event{Kind: EventScore, Paddle: scorer, Speed: b.Velocity.Len()})
		s.Reset()
	}

	if b.Box.Bottom() < 0 || b.Box.Top() > s.field.Y {
		b.Velocity.Y = -b.Velocity.Y
		s.emit(Event{Kind: EventWallBounce, Paddle: -1, Speed: b.Velocity.Len()})
	}

	for i := range s.paddles {
		s.Collide(&s.paddles[i], b)
	}

	// The right paddle always sits level with the ball.
	s.paddles[1].Box.Center.Y = b.Box.Center.Y

	if s.renderer != nil {
		s.renderer.Render(s)
	}
}

func (s *Simulation) paddleIndex(p *Paddle) int {
	for i := range s.paddles {
		if &s.paddles[i] == p {
			return i
		}
	}
	return -1
}

func (s *Simulation) emit(e Event) {
	if s.onEvent != nil {
		s.onEvent(e)
	}
}

// NewRand returns a random source for seed. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func sign(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}
