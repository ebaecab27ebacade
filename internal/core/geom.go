// Package core provides fundamental types and utilities shared by the
// simulation and the platform drivers. It has no external dependencies (in
// particular no Bubble Tea or Ebiten) so game logic stays pure and testable.
package core

import "math"

// Vec is a point or displacement in arena (world) coordinates.
// The arena origin is its center and y grows upward.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Box is an axis-aligned box described by its center and half extents.
// Collision tests in the simulation are expressed as Box containment of a
// point rather than exact circle geometry.
type Box struct {
	Center Vec
	Half   Vec
}

// NewBox creates a box centered at c with the given full width and height.
func NewBox(c Vec, w, h float64) Box {
	return Box{Center: c, Half: Vec{X: w / 2, Y: h / 2}}
}

// Grow returns the box with both half extents enlarged by tol on each axis.
func (b Box) Grow(tolX, tolY float64) Box {
	return Box{Center: b.Center, Half: Vec{X: b.Half.X + tolX, Y: b.Half.Y + tolY}}
}

// ContainsStrict reports whether p lies strictly inside the box.
func (b Box) ContainsStrict(p Vec) bool {
	return math.Abs(p.X-b.Center.X) < b.Half.X && math.Abs(p.Y-b.Center.Y) < b.Half.Y
}

// Contains reports whether p lies inside the box or on its edge.
func (b Box) Contains(p Vec) bool {
	return math.Abs(p.X-b.Center.X) <= b.Half.X && math.Abs(p.Y-b.Center.Y) <= b.Half.Y
}

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Sign returns -1 for negative values and 1 otherwise.
// Zero counts as positive, matching how the ball keeps a heading.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
