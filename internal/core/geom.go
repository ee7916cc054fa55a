// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in normalized world space.
type Vec2 struct {
	X, Y float64
}

// Add returns v translated by d.
func (v Vec2) Add(d Vec2) Vec2 {
	return Vec2{X: v.X + d.X, Y: v.Y + d.Y}
}

// Near reports whether other lies strictly inside the axis-aligned square of
// half-size t centred on v.
func (v Vec2) Near(other Vec2, t float64) bool {
	return math.Abs(v.X-other.X) < t && math.Abs(v.Y-other.Y) < t
}

// Clamp restricts both coordinates to [min, max].
func (v Vec2) Clamp(min, max float64) Vec2 {
	return Vec2{X: ClampF(v.X, min, max), Y: ClampF(v.Y, min, max)}
}

// Rect represents an axis-aligned box on the character grid.
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

// ToCell projects a normalized point onto a width x height grid.
// (-1, 1) maps to the top-left cell and (1, -1) to the bottom-right one.
func ToCell(p Vec2, width, height int) (col, row int) {
	col = int(math.Round((p.X + 1) / 2 * float64(width-1)))
	row = int(math.Round((1 - p.Y) / 2 * float64(height-1)))
	return col, row
}

// FromPixel converts a position inside a width x height viewport to normalized
// coordinates. (0, 0) maps to (-1, 1) and (width, height) to (1, -1).
// ok is false when the viewport has no area.
func FromPixel(x, y, width, height int) (p Vec2, ok bool) {
	if width <= 0 || height <= 0 {
		return Vec2{}, false
	}
	p.X = 2*float64(x)/float64(width) - 1
	p.Y = 1 - 2*float64(y)/float64(height)
	return p, true
}
