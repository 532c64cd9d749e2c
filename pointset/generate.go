// Package pointset generates and persists the point clouds the hull
// algorithms run on. Every generator is deterministic in its seed, so a run
// can be reproduced from its command line alone.
package pointset

import (
	"math"
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"

	"github.com/osuushi/convexhull/hull"
)

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Uniform scatters n points over the square [0, size) x [0, size).
func Uniform(n int, size float64, seed uint64) []hull.Point {
	if n < 1 {
		return nil
	}
	rng := newRng(seed)
	points := make([]hull.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, hull.Point{X: rng.Float64() * size, Y: rng.Float64() * size})
	}
	return points
}

// Ring spreads n points around a circle with a little radial jitter. Nearly
// every point ends up a hull vertex, which is the worst case for both
// algorithms.
func Ring(n int, size float64, seed uint64) []hull.Point {
	if n < 1 {
		return nil
	}
	rng := newRng(seed)
	center := size / 2
	radius := size * 0.4
	points := make([]hull.Point, 0, n)
	for i := 0; i < n; i++ {
		theta := rng.Float64() * 2 * math.Pi
		r := radius * (1 + rng.NormFloat64()*0.01)
		points = append(points, hull.Point{
			X: center + r*math.Cos(theta),
			Y: center + r*math.Sin(theta),
		})
	}
	return points
}

// Clusters drops k gaussian blobs into the square and deals n points out to
// them round robin.
func Clusters(n, k int, size float64, seed uint64) []hull.Point {
	if n < 1 {
		return nil
	}
	if k < 1 {
		k = 1
	}
	rng := newRng(seed)
	centers := make([]hull.Point, k)
	for i := range centers {
		centers[i] = hull.Point{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	spread := size / 12
	points := make([]hull.Point, 0, n)
	for i := 0; i < n; i++ {
		c := centers[i%k]
		points = append(points, hull.Point{
			X: c.X + rng.NormFloat64()*spread,
			Y: c.Y + rng.NormFloat64()*spread,
		})
	}
	return points
}

// Collinear lays n points along the square's diagonal and shuffles them.
// Both coordinates of each point are the same value, so orientation tests
// over the cloud come out exactly zero and the degenerate paths get
// exercised.
func Collinear(n int, size float64, seed uint64) []hull.Point {
	if n < 1 {
		return nil
	}
	rng := newRng(seed)
	points := make([]hull.Point, 0, n)
	for i := 0; i < n; i++ {
		v := size * float64(i) / float64(n)
		points = append(points, hull.Point{X: v, Y: v})
	}
	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	return points
}

// NoiseField masks a uniform scatter with value cubic noise: candidates
// survive where the field is positive, which gives the cloud lobes and
// voids instead of an even spread. If the field rejects too much it tops
// the cloud up with plain uniform points.
func NoiseField(n int, size float64, seed uint64) []hull.Point {
	if n < 1 {
		return nil
	}
	rng := newRng(seed)

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 2 / size

	points := make([]hull.Point, 0, n)
	for attempts := 0; len(points) < n && attempts < n*1000; attempts++ {
		x := rng.Float64() * size
		y := rng.Float64() * size
		if noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(y)) > 0 {
			points = append(points, hull.Point{X: x, Y: y})
		}
	}
	for len(points) < n {
		points = append(points, hull.Point{X: rng.Float64() * size, Y: rng.Float64() * size})
	}
	return points
}
