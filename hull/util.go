package hull

import "math"

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// onSegment reports whether p lies on the closed segment a-b: collinear
// with it and inside its bounding box.
func onSegment(a, b, p Point) bool {
	if Side(a, b, p) != 0 {
		return false
	}
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
