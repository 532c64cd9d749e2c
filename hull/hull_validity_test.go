package hull

// This contains no actual tests. It is just a helper for checking that a
// computed hull really is the convex hull of its input.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull boundary is valid for the given input. The
// boundary must be a counterclockwise walk. The rules are:
// 1. Every boundary vertex is one of the input points.
// 2. Every input point lies inside the boundary (edges included).
// 3. With three or more vertices, every consecutive triple turns
//    counterclockwise, so the walk is strictly convex and repeats nothing.

func AssertValidHull(t *testing.T, points, boundary []Point) {
	t.Helper()

	if len(points) > 0 && len(boundary) == 0 {
		t.Fatal("empty boundary for a non-empty point set")
	}

	inputSet := NewPointSet(points...)
	for _, v := range boundary {
		require.True(t, inputSet.Contains(v), "hull vertex %s is not an input point", v)
	}

	for _, p := range points {
		require.True(t, Contains(boundary, p), "input point %s is outside the hull", p)
	}

	if len(boundary) >= 3 {
		for i := range boundary {
			a := boundary[i]
			b := boundary[CircularIndex(i+1, len(boundary))]
			c := boundary[CircularIndex(i+2, len(boundary))]
			require.Equal(t, CounterClockwise, Orient(a, b, c),
				"boundary does not turn left at %s %s %s", a, b, c)
		}
	}
}

// assertHullsAgree runs both algorithms over the same input and checks that
// they describe the same hull: the counterclockwise walk validates against
// the input, the two vertex sets match, and rerunning either algorithm on
// its own output changes nothing.
func assertHullsAgree(t *testing.T, points []Point) {
	t.Helper()

	graham := GrahamScan(points)
	quick := Quickhull(points)

	AssertValidHull(t, points, graham)
	require.True(t, SameVertexSet(graham, quick),
		"vertex sets disagree:\n  graham: %v\n  quickhull: %v", graham, quick)
	require.Equal(t, graham, GrahamScan(graham), "rescanning the hull changed it")
	require.True(t, SameVertexSet(quick, Quickhull(quick)),
		"rerunning quickhull on its own hull changed the vertex set")
}
