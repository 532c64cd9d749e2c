package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	// Check that circular index handles negative indexes correctly
	expectedIndexes := []int{2, 0, 1, 2, 0, 1, 2, 0, 1}
	for i := -4; i < 5; i++ {
		assert.Equal(t, expectedIndexes[i+4], CircularIndex(i, 3))
	}
}

func TestOnSegment(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 2}

	t.Run("interior and endpoints", func(t *testing.T) {
		assert.True(t, onSegment(a, b, Point{2, 1}))
		assert.True(t, onSegment(a, b, a))
		assert.True(t, onSegment(a, b, b))
	})

	t.Run("collinear but outside", func(t *testing.T) {
		assert.False(t, onSegment(a, b, Point{6, 3}))
		assert.False(t, onSegment(a, b, Point{-2, -1}))
	})

	t.Run("off the line", func(t *testing.T) {
		assert.False(t, onSegment(a, b, Point{2, 2}))
	})

	t.Run("vertical segment", func(t *testing.T) {
		assert.True(t, onSegment(Point{3, 0}, Point{3, 5}, Point{3, 2}))
		assert.False(t, onSegment(Point{3, 0}, Point{3, 5}, Point{3, 6}))
	})

	t.Run("degenerate segment is a single point", func(t *testing.T) {
		p := Point{1, 1}
		assert.True(t, onSegment(p, p, p))
		assert.False(t, onSegment(p, p, Point{1, 2}))
	})
}
