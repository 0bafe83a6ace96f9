package core

import "fmt"

// Range is a closed one-dimensional interval {Min, Max}.
// Values are copied freely; use Normalize when the bounds may be swapped.
type Range[T Number] struct {
	Min T
	Max T
}

// NewRange returns the normalized interval spanning a and b.
func NewRange[T Number](a, b T) Range[T] {
	return Range[T]{Min: a, Max: b}.Normalize()
}

// Normalize swaps the bounds so that Min <= Max.
func (r Range[T]) Normalize() Range[T] {
	if r.Min > r.Max {
		return Range[T]{Min: r.Max, Max: r.Min}
	}
	return r
}

// Len returns Max - Min.
func (r Range[T]) Len() T {
	return r.Max - r.Min
}

// Contains reports whether v lies in [Min, Max].
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// ContainsOpen reports whether v lies strictly inside (Min, Max).
func (r Range[T]) ContainsOpen(v T) bool {
	return v > r.Min && v < r.Max
}

// Overlaps reports whether the two closed intervals share any point.
func (r Range[T]) Overlaps(o Range[T]) bool {
	return r.Min <= o.Max && o.Min <= r.Max
}

// Scale multiplies both bounds by f.
func (r Range[T]) Scale(f T) Range[T] {
	return Range[T]{Min: r.Min * f, Max: r.Max * f}
}

// String implements fmt.Stringer.
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}
