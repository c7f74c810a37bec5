package pong

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pong/internal/core"
)

func TestDriverFirstTickOnlyPrimes(t *testing.T) {
	updates := 0
	s := newTestSim(t, WithRenderer(RendererFunc(func(*Simulation) { updates++ })))
	d := NewDriver(s)
	base := time.Unix(1000, 0)

	d.Tick(base)
	assert.Zero(t, updates)
	assert.Zero(t, d.Ticks())

	d.Tick(base.Add(16 * time.Millisecond))
	assert.Equal(t, 1, updates)
	assert.Equal(t, uint64(1), d.Ticks())
}

func TestDriverIntegratesElapsedTime(t *testing.T) {
	s := newTestSim(t)
	s.Ball().Velocity = core.NewVector(100, 0)
	d := NewDriver(s)
	base := time.Unix(1000, 0)

	d.Tick(base)
	d.Tick(base.Add(250 * time.Millisecond))
	d.Tick(base.Add(500 * time.Millisecond))

	assert.InDelta(t, 450, s.Ball().Box.Center.X, 1e-9)
}

func TestDriverPauseDropsElapsedTime(t *testing.T) {
	s := newTestSim(t)
	s.Ball().Velocity = core.NewVector(100, 0)
	d := NewDriver(s)
	base := time.Unix(1000, 0)

	d.Tick(base)
	d.SetPaused(true)
	assert.True(t, d.Paused())
	d.Tick(base.Add(10 * time.Second))
	assert.Equal(t, 400.0, s.Ball().Box.Center.X)

	d.SetPaused(false)
	d.Tick(base.Add(20 * time.Second)) // re-prime
	d.Tick(base.Add(20*time.Second + 100*time.Millisecond))

	assert.InDelta(t, 410, s.Ball().Box.Center.X, 1e-9)
	assert.Equal(t, uint64(1), d.Ticks())
}

func TestDriverRunStopsOnCancel(t *testing.T) {
	s := newTestSim(t)
	d := NewDriver(s)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := d.Run(ctx, 200, func() {
		calls++
		if calls == 5 {
			cancel()
		}
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, calls, 5)
	assert.GreaterOrEqual(t, d.Ticks(), uint64(3))
}
