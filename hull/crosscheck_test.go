package hull

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

// The two algorithms make no promises about vertex order relative to each
// other, but on any input they must agree about which points are hull
// vertices. These tests throw differently shaped clouds at both and let
// assertHullsAgree do the judging.

func TestHullsAgreeOnUniformClouds(t *testing.T) {
	sizes := []int{3, 5, 22, 60, 150}
	for _, seed := range []uint64{1, 2, 3, 12, 99} {
		for _, size := range sizes {
			seed, size := seed, size
			t.Run(fmt.Sprintf("seed %d size %d", seed, size), func(t *testing.T) {
				rng := rand.New(rand.NewPCG(seed, uint64(size)))
				points := make([]Point, size)
				for i := range points {
					points[i] = Point{rng.Float64() * 100, rng.Float64() * 100}
				}
				assertHullsAgree(t, points)
			})
		}
	}
}

func TestHullsAgreeOnCircles(t *testing.T) {
	// Every point is a hull vertex here, so nothing may be dropped.
	rng := rand.New(rand.NewPCG(7, 7))
	points := make([]Point, 40)
	for i := range points {
		theta := rng.Float64() * 2 * math.Pi
		points[i] = Point{50 + 40*math.Cos(theta), 50 + 40*math.Sin(theta)}
	}
	assertHullsAgree(t, points)
}

func TestHullsAgreeOnClusters(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 13))
	centers := []Point{{20, 20}, {80, 30}, {50, 85}}
	var points []Point
	for _, c := range centers {
		for i := 0; i < 30; i++ {
			points = append(points, Point{
				c.X + rng.NormFloat64()*6,
				c.Y + rng.NormFloat64()*6,
			})
		}
	}
	assertHullsAgree(t, points)
}
