package core

import "testing"

func TestRangeNormalize(t *testing.T) {
	r := NewRange(10.0, -2.0)
	if r.Min != -2 || r.Max != 10 {
		t.Errorf("NewRange(10, -2) = %v, expected [-2, 10]", r)
	}
	if r.Len() != 12 {
		t.Errorf("Len() = %v, expected 12", r.Len())
	}

	already := Range[int]{Min: 1, Max: 3}
	if already.Normalize() != already {
		t.Error("Normalize should not change an ordered range")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range[float64]{Min: 0, Max: 10}

	if !r.Contains(0) || !r.Contains(10) {
		t.Error("Contains should include both bounds")
	}
	if r.ContainsOpen(0) || r.ContainsOpen(10) {
		t.Error("ContainsOpen should exclude both bounds")
	}
	if !r.ContainsOpen(5) {
		t.Error("ContainsOpen(5) should be true")
	}
}

func TestRangeOverlapsAndArithmetic(t *testing.T) {
	a := Range[int]{0, 5}
	if !a.Overlaps(Range[int]{5, 8}) {
		t.Error("touching closed ranges should overlap")
	}
	if a.Overlaps(Range[int]{6, 8}) {
		t.Error("disjoint ranges should not overlap")
	}
	if got := a.Scale(2); got != (Range[int]{0, 10}) {
		t.Errorf("Scale(2) = %v", got)
	}
	if a.String() != "[0, 5]" {
		t.Errorf("String() = %q", a.String())
	}
}
