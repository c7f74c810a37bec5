package pong

import "github.com/vovakirdan/pong/internal/core"

// Input turns pointer and activation events into simulation changes.
// Only the left paddle is driven by input.
type Input struct {
	sim *Simulation
}

// NewInput creates an input adapter for s.
func NewInput(s *Simulation) *Input {
	return &Input{sim: s}
}

// PointerMoved places the left paddle at the same relative height as the
// pointer on a surface surfaceHeight tall. A surface without height is ignored.
func (in *Input) PointerMoved(pointerY, surfaceHeight float64) {
	if surfaceHeight <= 0 {
		return
	}
	scale := pointerY / surfaceHeight
	in.sim.SetPaddleY(0, in.sim.Field().Y*scale)
}

// Activate serves the ball if it is parked.
func (in *Input) Activate() {
	in.sim.Start()
}

// Nudge moves the left paddle by dy field units, keeping its center on the field.
func (in *Input) Nudge(dy float64) {
	y := in.sim.Paddle(0).Box.Center.Y + dy
	in.sim.SetPaddleY(0, core.ClampF(y, 0, in.sim.Field().Y))
}
