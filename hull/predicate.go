package hull

import "fmt"

// Orientation classifies the turn made by an ordered triple of points. The
// numeric values follow the classic 0/1/2 convention and are part of the
// package's contract: 0 collinear, 1 clockwise, 2 counterclockwise.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Orient classifies the turn made traveling p -> q -> r. The test is an
// exact sign test on the cross product. There is no tolerance: a nearly
// collinear triple classifies by whatever sign the float math produces, and
// only an exact zero counts as collinear.
func Orient(p, q, r Point) Orientation {
	cross := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case cross > 0:
		return Clockwise
	case cross < 0:
		return CounterClockwise
	}
	return Collinear
}

// Side returns the raw signed cross product of p against the directed line
// p1 -> p2: positive when p lies to the left, negative to the right, zero on
// the line. The magnitude is twice the area of the triangle (p1, p2, p),
// which makes it a ready-made distance proxy when ranking points against a
// single baseline.
func Side(p1, p2, p Point) float64 {
	return (p.Y-p1.Y)*(p2.X-p1.X) - (p2.Y-p1.Y)*(p.X-p1.X)
}

// sideSign collapses Side to its sign: +1 left, -1 right, 0 on the line.
func sideSign(p1, p2, p Point) int {
	v := Side(p1, p2, p)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
