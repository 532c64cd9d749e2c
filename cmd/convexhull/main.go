// Command convexhull generates point clouds, computes their hulls with two
// independent algorithms, and compares, renders, or exports the results.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/dbg"
	"github.com/osuushi/convexhull/geo"
	"github.com/osuushi/convexhull/hull"
	"github.com/osuushi/convexhull/plot"
	"github.com/osuushi/convexhull/pointset"
)

var (
	app        = kingpin.New("convexhull", "Compute and compare convex hulls of 2d point clouds.")
	cpuProfile = app.Flag("cpu-profile", "Write a CPU profile to the current directory.").Bool()

	generateCmd   = app.Command("generate", "Generate a point cloud file.")
	generateShape = generateCmd.Flag("shape", "Cloud shape.").Default("uniform").Enum("uniform", "ring", "clusters", "collinear", "noise")
	generateCount = generateCmd.Flag("count", "Number of points.").Default("100").Int()
	generateSize  = generateCmd.Flag("size", "Side length of the square the cloud lives in.").Default("100").Float64()
	generateK     = generateCmd.Flag("clusters", "Cluster count for the clusters shape.").Default("3").Int()
	generateSeed  = generateCmd.Flag("seed", "Generator seed.").Default("1").Uint64()
	generateOut   = generateCmd.Flag("out", "Output file. Defaults to a fresh name.").String()

	compareCmd  = app.Command("compare", "Run both algorithms on a cloud and check they agree.")
	compareFile = compareCmd.Arg("file", "Point cloud file.").Required().ExistingFile()
	comparePlot = compareCmd.Flag("plot", "Also write a side by side PNG.").String()
	compareShow = compareCmd.Flag("show", "Print rendered images inline (iTerm2).").Bool()

	plotCmd   = app.Command("plot", "Render a cloud and its hull.")
	plotFile  = plotCmd.Arg("file", "Point cloud file.").Required().ExistingFile()
	plotOut   = plotCmd.Flag("out", "Output PNG path.").Default("hull.png").String()
	plotSteps = plotCmd.Flag("steps", "Write per-vertex boundary frames to this directory instead.").String()
	plotShow  = plotCmd.Flag("show", "Print rendered images inline (iTerm2).").Bool()

	exportCmd    = app.Command("export", "Write a cloud or its hull in a geospatial format.")
	exportFile   = exportCmd.Arg("file", "Point cloud file.").Required().ExistingFile()
	exportFormat = exportCmd.Flag("format", "Output format.").Default("geojson").Enum("geojson", "wkt")
	exportWhat   = exportCmd.Flag("what", "Export the hull boundary, the cloud, or both.").Default("hull").Enum("hull", "points", "both")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	switch command {
	case generateCmd.FullCommand():
		runGenerate()
	case compareCmd.FullCommand():
		runCompare()
	case plotCmd.FullCommand():
		runPlot()
	case exportCmd.FullCommand():
		runExport()
	}
}

func runGenerate() {
	var points []hull.Point
	switch *generateShape {
	case "uniform":
		points = pointset.Uniform(*generateCount, *generateSize, *generateSeed)
	case "ring":
		points = pointset.Ring(*generateCount, *generateSize, *generateSeed)
	case "clusters":
		points = pointset.Clusters(*generateCount, *generateK, *generateSize, *generateSeed)
	case "collinear":
		points = pointset.Collinear(*generateCount, *generateSize, *generateSeed)
	case "noise":
		points = pointset.NoiseField(*generateCount, *generateSize, *generateSeed)
	}

	out := *generateOut
	if out == "" {
		out = dbg.Fresh() + ".points"
	}
	if err := pointset.WriteFile(out, points); err != nil {
		log.Fatalf("Could not write %q: %v", out, err)
	}
	fmt.Printf("Wrote %d %s points to %s\n", len(points), *generateShape, out)
}

func runCompare() {
	points := mustReadPoints(*compareFile)

	grahamStart := time.Now()
	graham, err := convexhull.GrahamScan(points)
	grahamTime := time.Since(grahamStart)
	if err != nil {
		log.Fatalf("Graham scan failed: %v", err)
	}

	quickStart := time.Now()
	quick, err := convexhull.Quickhull(points)
	quickTime := time.Since(quickStart)
	if err != nil {
		log.Fatalf("Quickhull failed: %v", err)
	}

	fmt.Printf("%d points\n", len(points))
	fmt.Printf("graham scan  %3d vertices in %s\n", len(graham), grahamTime.Round(time.Microsecond))
	fmt.Printf("quickhull    %3d vertices in %s\n", len(quick), quickTime.Round(time.Microsecond))

	ok := verdict("vertex sets match", hull.SameVertexSet(graham, quick))
	ok = verdict("hull contains every input point", allContained(graham, points)) && ok
	ok = verdict("hull vertices are input points", allMembers(points, graham, quick)) && ok

	if *comparePlot != "" {
		if err := plot.Comparison(*comparePlot, points, graham, quick); err != nil {
			log.Fatalf("Could not render %q: %v", *comparePlot, err)
		}
		fmt.Printf("Wrote %s\n", *comparePlot)
		if *compareShow {
			plot.Show(*comparePlot)
		}
	}

	if !ok {
		os.Exit(1)
	}
}

func runPlot() {
	points := mustReadPoints(*plotFile)

	graham, err := convexhull.GrahamScan(points)
	if err != nil {
		log.Fatalf("Graham scan failed: %v", err)
	}

	if *plotSteps != "" {
		if err := os.MkdirAll(*plotSteps, 0o755); err != nil {
			log.Fatalf("Could not create %q: %v", *plotSteps, err)
		}
		frames, err := plot.Steps(*plotSteps, "boundary", points, graham)
		if err != nil {
			log.Fatalf("Could not render steps: %v", err)
		}
		fmt.Printf("Wrote %d frames to %s\n", len(frames), *plotSteps)
		if *plotShow {
			for _, frame := range frames {
				plot.Show(frame)
			}
		}
		return
	}

	quick, err := convexhull.Quickhull(points)
	if err != nil {
		log.Fatalf("Quickhull failed: %v", err)
	}
	if err := plot.Comparison(*plotOut, points, graham, quick); err != nil {
		log.Fatalf("Could not render %q: %v", *plotOut, err)
	}
	fmt.Printf("Wrote %s\n", *plotOut)
	if *plotShow {
		plot.Show(*plotOut)
	}
}

func runExport() {
	points := mustReadPoints(*exportFile)

	if *exportWhat == "hull" || *exportWhat == "both" {
		boundary, err := convexhull.GrahamScan(points)
		if err != nil {
			log.Fatalf("Graham scan failed: %v", err)
		}
		emit(geo.MarshalGeoJSON, geo.MarshalWKT, boundary)
	}
	if *exportWhat == "points" || *exportWhat == "both" {
		emit(geo.MarshalGeoJSONSet, geo.MarshalWKTSet, points)
	}
}

func emit(asGeoJSON func([]hull.Point) ([]byte, error), asWKT func([]hull.Point) (string, error), points []hull.Point) {
	switch *exportFormat {
	case "geojson":
		data, err := asGeoJSON(points)
		if err != nil {
			log.Fatalf("Could not export: %v", err)
		}
		fmt.Println(string(data))
	case "wkt":
		s, err := asWKT(points)
		if err != nil {
			log.Fatalf("Could not export: %v", err)
		}
		fmt.Println(s)
	}
}

func verdict(label string, ok bool) bool {
	mark := aurora.Green("✓")
	if !ok {
		mark = aurora.Red("✗")
	}
	fmt.Printf("%s %s\n", mark, label)
	return ok
}

func mustReadPoints(path string) []hull.Point {
	points, err := pointset.ReadFile(path)
	if err != nil {
		log.Fatalf("Could not read %q: %v", path, err)
	}
	return points
}

func allContained(boundary, points []hull.Point) bool {
	for _, p := range points {
		if !hull.Contains(boundary, p) {
			return false
		}
	}
	return true
}

func allMembers(points []hull.Point, hulls ...[]hull.Point) bool {
	set := hull.NewPointSet(points...)
	for _, h := range hulls {
		for _, v := range h {
			if !set.Contains(v) {
				return false
			}
		}
	}
	return true
}
