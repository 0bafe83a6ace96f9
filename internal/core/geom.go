// Package core provides fundamental types and utilities for the paper plane game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "cmp"

// Number is the set of numeric types usable as Range bounds.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of a number.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Map linearly maps input from the in interval onto the out interval.
// A degenerate in interval maps everything to out.Min.
func Map(input float64, in, out Range[float64]) float64 {
	span := in.Len()
	if span == 0 {
		return out.Min
	}
	return out.Min + (input-in.Min)/span*out.Len()
}

// ReverseIndex mirrors index within [0, n): 0 becomes n-1 and n-1 becomes 0.
func ReverseIndex(index, n int) int {
	return Abs(index - (n - 1))
}

// Vec2 is a point or velocity in world pixels.
type Vec2 struct {
	X, Y float64
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}
