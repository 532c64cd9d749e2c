package hull

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/convexhull/dbg"
)

// Quickhull returns the convex hull of points in the algorithm's
// characteristic assembly order, which is NOT a boundary walk: vertices
// found above the min-X/max-X baseline in discovery order, then vertices
// found below it, then the two baseline endpoints themselves, minimum first.
// Callers who need a boundary traversal should use GrahamScan.
//
// Inputs of fewer than three points come back as-is, copied. The input
// slice is never modified. Coordinates must be finite; see Validate.
func Quickhull(points []Point) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}

	// Baseline endpoints by X, first encountered winning ties. When every
	// point shares one X value the two coincide, both chains come up empty,
	// and the result is that point twice.
	minPt, maxPt := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < minPt.X {
			minPt = p
		}
		if p.X > maxPt.X {
			maxPt = p
		}
	}

	hull := make([]Point, 0, len(points))
	hull = append(hull, hullChain(points, minPt, maxPt, 1)...)
	hull = append(hull, hullChain(points, minPt, maxPt, -1)...)
	hull = append(hull, minPt, maxPt)
	return hull
}

// A frame is one pending piece of work while a chain is being expanded:
// either partition the points against a baseline (expand), or emit a vertex
// an earlier expansion discovered. Emit frames are what let an explicit
// stack reproduce the recursive concatenation [left subchain, vertex, right
// subchain] in order.
type frame struct {
	p1, p2 Point
	side   int
	vertex Point
	emit   bool
}

func (f *frame) String() string {
	if f.emit {
		return fmt.Sprintf("Frame %s emit %s", f.DbgName(), f.vertex)
	}
	return fmt.Sprintf("Frame %s { %s -> %s, side %+d }", f.DbgName(), f.p1, f.p2, f.side)
}

// Emit frames are cyan; expansions are green left of their baseline, red
// right of it.
func (f *frame) DbgName() string {
	name := dbg.Name(f)
	switch {
	case f.emit:
		name = aurora.Cyan(name).String()
	case f.side > 0:
		name = aurora.Green(name).String()
	default:
		name = aurora.Red(name).String()
	}
	return name
}

type frameStack []*frame

func (s *frameStack) Push(f *frame) {
	*s = append(*s, f)
}

func (s *frameStack) Pop() *frame {
	if len(*s) == 0 {
		return nil
	}
	f := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return f
}

func (s *frameStack) Empty() bool {
	return len(*s) == 0
}

// hullChain collects the hull vertices strictly on one side of the baseline
// p1 -> p2, in the discovery order of the classic recursive formulation.
// The recursion runs on an explicit stack so an adversarially large input
// cannot exhaust the call stack. Every expansion rescans the full original
// point set; the farthest qualifying point becomes a vertex, and the two
// sub-baselines it forms are queued with the side facing away from the
// opposite endpoint. The vertex sits on both sub-baselines, so it can never
// qualify again, and each child's candidate set strictly shrinks.
func hullChain(points []Point, p1, p2 Point, side int) []Point {
	var chain []Point
	var stack frameStack
	stack.Push(&frame{p1: p1, p2: p2, side: side})
	for !stack.Empty() {
		f := stack.Pop()
		if f.emit {
			chain = append(chain, f.vertex)
			continue
		}
		if f.side != 1 && f.side != -1 {
			fatalf("side flag out of range in %s", f)
		}
		far, ok := farthestFrom(points, f.p1, f.p2, f.side)
		if !ok {
			continue
		}
		// Pushed in reverse so the pops run left subchain, vertex, right
		// subchain.
		stack.Push(&frame{p1: far, p2: f.p2, side: -sideSign(far, f.p2, f.p1)})
		stack.Push(&frame{vertex: far, emit: true})
		stack.Push(&frame{p1: f.p1, p2: far, side: -sideSign(f.p1, far, f.p2)})
	}
	return chain
}

// farthestFrom picks the point with the greatest |Side| among those whose
// side sign matches side. The comparison is strict, so the first point to
// reach the maximum wins and points on the baseline never qualify.
func farthestFrom(points []Point, p1, p2 Point, side int) (Point, bool) {
	var far Point
	maxDist := 0.0
	found := false
	for _, p := range points {
		if sideSign(p1, p2, p) != side {
			continue
		}
		if d := math.Abs(Side(p1, p2, p)); d > maxDist {
			far = p
			maxDist = d
			found = true
		}
	}
	return far, found
}
