package pointset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/convexhull/hull"
)

// Point files are plain text: a count on the first line, then one "x,y"
// pair per line. The count must match the number of pairs exactly, and
// every coordinate must be finite.

func ReadFile(path string) ([]hull.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		return nil, errors.Errorf("%s is empty", path)
	}
	header := strings.TrimSpace(scanner.Text())
	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, errors.Errorf("%s: bad point count %q", path, header)
	}

	points := make([]hull.Point, 0, count)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", path, lineNo)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if len(points) != count {
		return nil, errors.Errorf("%s declares %d points but contains %d", path, count, len(points))
	}
	if err := hull.Validate(points); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return points, nil
}

func parsePoint(line string) (hull.Point, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return hull.Point{}, errors.Errorf("expected \"x,y\", got %q", line)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return hull.Point{}, errors.Wrapf(err, "bad x value %q", strings.TrimSpace(parts[0]))
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return hull.Point{}, errors.Wrapf(err, "bad y value %q", strings.TrimSpace(parts[1]))
	}
	return hull.Point{X: x, Y: y}, nil
}

// WriteFile writes points in the same format ReadFile reads. Coordinates
// are formatted so that reading the file back reproduces them exactly.
func WriteFile(path string, points []hull.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(points))
	for _, p := range points {
		fmt.Fprintf(w, "%g,%g\n", p.X, p.Y)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
