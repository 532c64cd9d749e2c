package hull

import (
	"fmt"
	"math"
)

// A point in 2d space. Points here are plain values: equality is
// coordinate-wise, copies are independent, and nothing in this package holds
// a pointer into a caller's slice.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite reports whether both coordinates are ordinary finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// PointSet is a value-keyed set of points. Note that a NaN coordinate would
// never match itself as a map key; Validate keeps such points out of this
// package entirely.
type PointSet map[Point]struct{}

func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s.Add(p)
	}
	return s
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Equals(other PointSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
