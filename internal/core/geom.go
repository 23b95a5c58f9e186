// Package core provides fundamental types and utilities for the frogger platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec is a position or direction in world cells.
type Vec struct {
	X, Y float64
}

// Rect represents an integer axis-aligned box, used for sprite bounds and
// screen areas.
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

// Empty reports whether the rectangle has no visible area.
// Degenerate bounds (non-positive width or height) are empty.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// At converts the rectangle to world space, offset by the given origin.
func (r Rect) At(origin Vec) RectF {
	return RectF{
		X: origin.X + float64(r.X),
		Y: origin.Y + float64(r.Y),
		W: float64(r.W),
		H: float64(r.H),
	}
}

// RectF is a world-space axis-aligned bounding box.
type RectF struct {
	X, Y float64
	W, H float64
}

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if both rectangles overlap strictly on both axes.
// Touching edges do not count, and an empty rectangle never intersects.
func (r RectF) Intersects(other RectF) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
