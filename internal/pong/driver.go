package pong

import (
	"context"
	"time"
)

// Driver feeds elapsed wall-clock time into a Simulation.
// The first tick after creation or after a pause only records the baseline.
type Driver struct {
	sim    *Simulation
	last   time.Time
	primed bool
	paused bool
	ticks  uint64
}

// NewDriver creates a driver for s.
func NewDriver(s *Simulation) *Driver {
	return &Driver{sim: s}
}

// Tick advances the simulation by the time elapsed since the previous tick.
func (d *Driver) Tick(now time.Time) {
	if d.paused {
		return
	}
	if !d.primed {
		d.last = now
		d.primed = true
		return
	}

	dt := now.Sub(d.last).Seconds()
	d.last = now
	d.sim.Update(dt)
	d.ticks++
}

// SetPaused stops or resumes updates. Resuming discards the old baseline so
// the paused interval is never integrated.
func (d *Driver) SetPaused(paused bool) {
	if paused == d.paused {
		return
	}
	d.paused = paused
	if !paused {
		d.primed = false
	}
}

// Paused reports whether updates are suspended.
func (d *Driver) Paused() bool {
	return d.paused
}

// Ticks returns how many updates the driver has issued.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Run ticks the driver at the given rate until ctx is done. before, when not
// nil, runs ahead of every tick on the same goroutine.
func (d *Driver) Run(ctx context.Context, tickRate int, before func()) error {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if before != nil {
				before()
			}
			d.Tick(now)
		}
	}
}
