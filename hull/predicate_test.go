package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient(t *testing.T) {
	cases := []struct {
		name    string
		p, q, r Point
		want    Orientation
	}{
		{"left turn", Point{0, 0}, Point{1, 0}, Point{1, 1}, CounterClockwise},
		{"right turn", Point{0, 0}, Point{1, 0}, Point{1, -1}, Clockwise},
		{"straight line", Point{0, 0}, Point{1, 1}, Point{2, 2}, Collinear},
		{"reversal", Point{0, 0}, Point{2, 0}, Point{1, 0}, Collinear},
		{"repeated point", Point{3, 4}, Point{3, 4}, Point{-1, 2}, Collinear},
		{"all equal", Point{5, 5}, Point{5, 5}, Point{5, 5}, Collinear},
		// The sign test is exact: any nonzero cross product classifies,
		// no matter how small.
		{"tiny left deviation", Point{0, 0}, Point{1, 0}, Point{2, 1e-12}, CounterClockwise},
		{"tiny right deviation", Point{0, 0}, Point{1, 0}, Point{2, -1e-12}, Clockwise},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Orient(c.p, c.q, c.r))
		})
	}
}

// The 0/1/2 values are contractual; they match the category convention the
// rest of the package is written against.
func TestOrientationValues(t *testing.T) {
	assert.Equal(t, 0, int(Collinear))
	assert.Equal(t, 1, int(Clockwise))
	assert.Equal(t, 2, int(CounterClockwise))

	assert.Equal(t, "collinear", Collinear.String())
	assert.Equal(t, "clockwise", Clockwise.String())
	assert.Equal(t, "counterclockwise", CounterClockwise.String())
	assert.Equal(t, "Orientation(7)", Orientation(7).String())
}

func TestSide(t *testing.T) {
	a := Point{0, 0}
	b := Point{2, 0}

	t.Run("sign picks the half plane", func(t *testing.T) {
		assert.Greater(t, Side(a, b, Point{1, 3}), 0.0)
		assert.Less(t, Side(a, b, Point{1, -3}), 0.0)
		assert.Zero(t, Side(a, b, Point{5, 0}))
	})

	t.Run("magnitude is twice the triangle area", func(t *testing.T) {
		// Base 2, height 3: area 3, so the raw value is 6.
		assert.Equal(t, 6.0, Side(a, b, Point{1, 3}))
		assert.Equal(t, -6.0, Side(a, b, Point{1, -3}))
	})

	t.Run("direction of the baseline flips the sign", func(t *testing.T) {
		p := Point{1, 3}
		assert.Equal(t, Side(a, b, p), -Side(b, a, p))
	})
}
