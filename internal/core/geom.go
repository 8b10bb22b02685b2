// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a floating-point pair used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Extent is the width and height of an entity, fixed for its lifetime.
type Extent struct {
	W, H float64
}

// Rect represents an axis-aligned bounding box in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds the rectangle covered by an entity at pos with the given extent.
func RectAt(pos Vec2, ext Extent) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: ext.W, H: ext.H}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Touches is the inclusive variant of Intersects: rectangles sharing an
// edge are considered in contact.
func (r Rect) Touches(other Rect) bool {
	return r.OverlapsX(other) &&
		r.Bottom() >= other.Y && r.Y <= other.Bottom()
}

// OverlapsX reports whether the horizontal spans overlap, edges inclusive.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() >= other.X && r.X <= other.Right()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
