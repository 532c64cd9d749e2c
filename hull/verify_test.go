package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	t.Run("interior point", func(t *testing.T) {
		assert.True(t, Contains(square, Point{2, 2}))
	})

	t.Run("boundary counts as inside", func(t *testing.T) {
		assert.True(t, Contains(square, Point{2, 0}))
		assert.True(t, Contains(square, Point{4, 4}))
	})

	t.Run("outside point", func(t *testing.T) {
		assert.False(t, Contains(square, Point{5, 2}))
		assert.False(t, Contains(square, Point{-0.001, 2}))
	})

	t.Run("empty boundary contains nothing", func(t *testing.T) {
		assert.False(t, Contains(nil, Point{0, 0}))
	})

	t.Run("single vertex", func(t *testing.T) {
		assert.True(t, Contains([]Point{{1, 1}}, Point{1, 1}))
		assert.False(t, Contains([]Point{{1, 1}}, Point{1, 2}))
	})

	t.Run("two vertices form a segment", func(t *testing.T) {
		seg := []Point{{0, 0}, {4, 2}}
		assert.True(t, Contains(seg, Point{2, 1}))
		assert.False(t, Contains(seg, Point{2, 2}))
		assert.False(t, Contains(seg, Point{6, 3}))
	})
}

func TestSameVertexSet(t *testing.T) {
	t.Run("order does not matter", func(t *testing.T) {
		a := []Point{{0, 0}, {1, 0}, {1, 1}}
		b := []Point{{1, 1}, {0, 0}, {1, 0}}
		assert.True(t, SameVertexSet(a, b))
	})

	t.Run("multiplicity does not matter", func(t *testing.T) {
		a := []Point{{5, 5}, {5, 5}}
		b := []Point{{5, 5}}
		assert.True(t, SameVertexSet(a, b))
	})

	t.Run("differing members", func(t *testing.T) {
		a := []Point{{0, 0}, {1, 0}}
		b := []Point{{0, 0}, {2, 0}}
		assert.False(t, SameVertexSet(a, b))
	})

	t.Run("both empty", func(t *testing.T) {
		assert.True(t, SameVertexSet(nil, nil))
	})
}
