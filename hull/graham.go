package hull

import (
	"math"
	"sort"
)

// GrahamScan returns the convex hull of points as a counterclockwise
// boundary walk starting from the bottommost point (ties broken by smallest
// X). Collinear points interior to an edge are popped as the sweep passes
// them, so a fully collinear input degenerates to its two extreme points.
// One caveat: when the closing edge climbs to the left, the sort puts the
// far end of that final ray first, so the point nearest the pivot arrives
// last and survives as an extra collinear vertex on the walk.
//
// Inputs of fewer than three points come back as-is, copied. The input
// slice is never modified. Coordinates must be finite; see Validate.
func GrahamScan(points []Point) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	// Sort a copy by polar angle about the pivot. Ties (the pivot itself,
	// and any points collinear through it) fall back to lexicographic order
	// on (X, Y), so the sweep sees one deterministic sequence no matter how
	// the input was arranged. The pivot always sorts first: every other
	// point has angle in [0, π], and anything sharing its angle 0 lies to
	// its right.
	byAngle := make([]polarPoint, len(points))
	for i, p := range points {
		byAngle[i] = polarPoint{p, math.Atan2(p.Y-pivot.Y, p.X-pivot.X)}
	}
	sort.Slice(byAngle, func(i, j int) bool {
		a, b := byAngle[i], byAngle[j]
		if a.angle != b.angle {
			return a.angle < b.angle
		}
		if a.pt.X != b.pt.X {
			return a.pt.X < b.pt.X
		}
		return a.pt.Y < b.pt.Y
	})

	// Sweep with a stack: a point survives only while the walk through it
	// still turns left. Anything that would make the boundary turn clockwise
	// or sit collinear inside an edge gets popped when the next point
	// arrives; the final point is never rechecked against the closing edge.
	hull := make([]Point, 0, len(points))
	for _, pp := range byAngle {
		for len(hull) > 1 && Orient(hull[len(hull)-2], hull[len(hull)-1], pp.pt) != CounterClockwise {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pp.pt)
	}
	return hull
}

type polarPoint struct {
	pt    Point
	angle float64
}
