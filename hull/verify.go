package hull

// Cross-checking helpers. Running both algorithms and comparing is the
// whole point of having two of them; these are the comparisons.

// Contains reports whether p lies inside or on the hull described by
// vertices in counterclockwise boundary order (the GrahamScan ordering).
// Degenerate hulls work too: a single vertex contains only itself, and a
// two-vertex hull contains exactly the points of its segment.
func Contains(vertices []Point, p Point) bool {
	switch len(vertices) {
	case 0:
		return false
	case 1:
		return vertices[0] == p
	case 2:
		return onSegment(vertices[0], vertices[1], p)
	}
	for i := range vertices {
		if Side(vertices[i], vertices[CircularIndex(i+1, len(vertices))], p) < 0 {
			return false
		}
	}
	return true
}

// SameVertexSet reports whether two hulls name the same vertices, ignoring
// order and multiplicity.
func SameVertexSet(a, b []Point) bool {
	return NewPointSet(a...).Equals(NewPointSet(b...))
}
