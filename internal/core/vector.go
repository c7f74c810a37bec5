package core

import "math"

// Vector is a 2D quantity with a magnitude that can be read and rewritten.
type Vector struct {
	X, Y float64
}

// NewVector creates a vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Len returns the magnitude of the vector.
func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SetLen rescales the vector in place so that its magnitude becomes l,
// keeping its direction.
//
// A zero vector has no direction: the scale factor divides by zero and both
// components become NaN. Callers that can produce a zero vector must check
// IsZero first.
func (v *Vector) SetLen(l float64) {
	f := l / v.Len()
	v.X *= f
	v.Y *= f
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}
