// Package core provides fundamental types and utilities for the pong program.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep the simulation pure and testable.
package core

// Box is an axis-aligned rectangle described by its center and its size.
// Size is fixed once the box is created; callers move a box by writing Center.
type Box struct {
	Center Vector
	size   Vector
}

// NewBox creates a box of the given width and height centered on the origin.
// Negative dimensions are clamped to zero.
func NewBox(w, h float64) Box {
	return Box{size: Vector{X: max(w, 0), Y: max(h, 0)}}
}

// Size returns the width and height of the box.
func (b Box) Size() Vector {
	return b.size
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.size.X/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.size.X/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Center.Y - b.size.Y/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y + b.size.Y/2
}

// Overlaps reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Left() < o.Right() && b.Right() > o.Left() &&
		b.Top() < o.Bottom() && b.Bottom() > o.Top()
}

// Rect represents an integer cell rectangle used when drawing to a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
