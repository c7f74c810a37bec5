package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputPointerMoved(t *testing.T) {
	s := newTestSim(t)
	in := NewInput(s)

	in.PointerMoved(6, 24)
	assert.Equal(t, 150.0, s.Paddle(0).Box.Center.Y)

	in.PointerMoved(300, 300)
	assert.Equal(t, 600.0, s.Paddle(0).Box.Center.Y)

	// Right paddle is never driven by input
	assert.Equal(t, 300.0, s.Paddle(1).Box.Center.Y)
}

func TestInputPointerMovedNoSurface(t *testing.T) {
	s := newTestSim(t)
	in := NewInput(s)

	in.PointerMoved(10, 0)
	assert.Equal(t, 300.0, s.Paddle(0).Box.Center.Y)
}

func TestInputActivate(t *testing.T) {
	s := newTestSim(t)
	in := NewInput(s)

	in.Activate()
	assert.False(t, s.Ball().Parked())
	assert.InDelta(t, 200, s.Ball().Velocity.Len(), tolerance)
}

func TestInputNudge(t *testing.T) {
	s := newTestSim(t)
	in := NewInput(s)

	in.Nudge(-50)
	assert.Equal(t, 250.0, s.Paddle(0).Box.Center.Y)

	in.Nudge(-1000)
	assert.Equal(t, 0.0, s.Paddle(0).Box.Center.Y)

	in.Nudge(5000)
	assert.Equal(t, 600.0, s.Paddle(0).Box.Center.Y)
}
