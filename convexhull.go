// Convex hulls for 2d point sets, computed two independent ways.
//
// This package computes the convex hull of a finite point set with Graham's
// scan and with Quickhull. The two share nothing beyond the point type and
// the low-level orientation predicates, which makes each a practical
// cross-check on the other: run both, compare vertex sets.
//
// GrahamScan returns the hull as a counterclockwise boundary walk.
// Quickhull returns the hull in its own discovery order; on degenerate
// collinear inputs the two vertex sets can differ (see the hull package).
// The inner hull package exposes the raw, precondition-based API along
// with the predicates, containment checks, and set comparisons.
package convexhull

import "github.com/osuushi/convexhull/hull"

type Point = hull.Point

// ErrInvalidInput is wrapped by the error returned when an input coordinate
// is NaN or infinite.
var ErrInvalidInput = hull.ErrInvalidInput

// GrahamScan computes the convex hull of points in counterclockwise
// boundary order, starting from the bottommost vertex. Inputs with fewer
// than three points come back unchanged. The input is validated first and
// never modified.
func GrahamScan(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := hull.Validate(points); err != nil {
		return nil, err
	}
	return hull.GrahamScan(points), nil
}

// Quickhull computes the convex hull of points in Quickhull's discovery
// order: upper chain, lower chain, then the two baseline endpoints. Inputs
// with fewer than three points come back unchanged. The input is validated
// first and never modified.
func Quickhull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := hull.Validate(points); err != nil {
		return nil, err
	}
	return hull.Quickhull(points), nil
}
