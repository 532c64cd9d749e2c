// Package plot renders point clouds and their hulls to PNG files.
package plot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/convexhull/hull"
)

const (
	panelSize = 400
	padding   = 20
)

type bounds struct {
	minX, minY, maxX, maxY float64
}

func boundsOf(points []hull.Point) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	if b.minX > b.maxX {
		return bounds{0, 0, 1, 1}
	}
	// A zero-span cloud still needs a usable scale
	if b.maxX == b.minX {
		b.maxX++
	}
	if b.maxY == b.minY {
		b.maxY++
	}
	return b
}

func (b bounds) scale() float64 {
	return math.Min(
		(panelSize-2*padding)/(b.maxX-b.minX),
		(panelSize-2*padding)/(b.maxY-b.minY),
	)
}

// pushPanel saves the context state and sets up a square panel at offsetX
// with the origin at the bottom left, scaled so the cloud fills it. Callers
// must Pop when done. Returns the scale so fixed-pixel marks can be drawn
// in cloud coordinates.
func pushPanel(c *gg.Context, offsetX float64, b bounds) float64 {
	s := b.scale()
	c.Push()

	// Flip the panel so the origin is at the bottom left
	c.Translate(offsetX, panelSize)
	c.Scale(1, -1)

	c.Translate(padding, padding)
	c.Scale(s, s)
	c.Translate(-b.minX, -b.minY)
	return s
}

func drawCloud(c *gg.Context, points []hull.Point, s float64) {
	c.SetRGB(0.3, 0.6, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/s)
	}
	c.Fill()
}

func tracePath(c *gg.Context, boundary []hull.Point, closed bool) {
	if len(boundary) == 0 {
		return
	}
	c.MoveTo(boundary[0].X, boundary[0].Y)
	for _, p := range boundary[1:] {
		c.LineTo(p.X, p.Y)
	}
	if closed {
		c.ClosePath()
	}
}

// Comparison renders the same cloud twice, side by side: the left panel
// strokes the first boundary in red, the right panel the second in green.
// Each boundary is drawn closed, in whatever vertex order its algorithm
// produced.
func Comparison(path string, points, left, right []hull.Point) error {
	b := boundsOf(points)
	c := gg.NewContext(2*panelSize, panelSize)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(c.Width()), float64(c.Height()))
	c.Fill()

	panels := []struct {
		boundary      []hull.Point
		red, grn, blu float64
	}{
		{left, 1, 0.3, 0.3},
		{right, 0.3, 1, 0.3},
	}
	for i, panel := range panels {
		s := pushPanel(c, float64(i*panelSize), b)
		drawCloud(c, points, s)
		c.SetRGB(panel.red, panel.grn, panel.blu)
		tracePath(c, panel.boundary, true)
		c.SetLineWidth(2)
		c.Stroke()
		c.Pop()
	}
	return c.SavePNG(path)
}

// Steps renders the boundary growing one vertex per frame, then a final
// frame with the walk closed. Frames are written to dir as
// prefix_000.png, prefix_001.png, and so on; the written paths come back
// in order.
func Steps(dir, prefix string, points, boundary []hull.Point) ([]string, error) {
	b := boundsOf(points)
	var paths []string

	frame := func(chain []hull.Point, closed bool) error {
		c := gg.NewContext(panelSize, panelSize)
		c.SetRGB(0, 0, 0)
		c.DrawRectangle(0, 0, float64(c.Width()), float64(c.Height()))
		c.Fill()

		s := pushPanel(c, 0, b)
		drawCloud(c, points, s)
		c.SetRGB(1, 0.7, 0)
		tracePath(c, chain, closed)
		c.SetLineWidth(2)
		c.Stroke()
		for _, p := range chain {
			c.DrawCircle(p.X, p.Y, 4/s)
		}
		c.Fill()
		c.Pop()

		path := filepath.Join(dir, fmt.Sprintf("%s_%03d.png", prefix, len(paths)))
		if err := c.SavePNG(path); err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	}

	for k := 1; k <= len(boundary); k++ {
		if err := frame(boundary[:k], false); err != nil {
			return nil, err
		}
	}
	if err := frame(boundary, true); err != nil {
		return nil, err
	}
	return paths, nil
}

// Show prints an image inline for terminals that speak the iTerm2 protocol.
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}
