// Package geo exports clouds and hull boundaries in standard geospatial
// formats.
package geo

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/osuushi/convexhull/hull"
)

// Geometry converts a hull boundary into its natural geometry: one vertex
// becomes a point, two become a line string, three or more become a polygon
// whose ring repeats the first vertex to close. The boundary must be a
// proper walk for the polygon to be simple.
func Geometry(boundary []hull.Point) (geom.T, error) {
	switch len(boundary) {
	case 0:
		return nil, errors.New("empty boundary has no geometry")
	case 1:
		return geom.NewPointFlat(geom.XY, flatCoords(boundary)), nil
	case 2:
		return geom.NewLineStringFlat(geom.XY, flatCoords(boundary)), nil
	}
	ring := append(flatCoords(boundary), boundary[0].X, boundary[0].Y)
	return geom.NewPolygonFlat(geom.XY, ring, []int{len(ring)}), nil
}

// MultiPoint converts a cloud to a multi point geometry, order preserved.
func MultiPoint(points []hull.Point) *geom.MultiPoint {
	return geom.NewMultiPointFlat(geom.XY, flatCoords(points))
}

func flatCoords(points []hull.Point) []float64 {
	flat := make([]float64, 0, 2*len(points))
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// MarshalGeoJSON renders a boundary's geometry as GeoJSON.
func MarshalGeoJSON(boundary []hull.Point) ([]byte, error) {
	g, err := Geometry(boundary)
	if err != nil {
		return nil, err
	}
	return geojson.Marshal(g)
}

// MarshalWKT renders a boundary's geometry as WKT.
func MarshalWKT(boundary []hull.Point) (string, error) {
	g, err := Geometry(boundary)
	if err != nil {
		return "", err
	}
	return wkt.Marshal(g)
}

// MarshalGeoJSONSet renders a cloud as a GeoJSON multi point.
func MarshalGeoJSONSet(points []hull.Point) ([]byte, error) {
	return geojson.Marshal(MultiPoint(points))
}

// MarshalWKTSet renders a cloud as a WKT multi point.
func MarshalWKTSet(points []hull.Point) (string, error) {
	return wkt.Marshal(MultiPoint(points))
}
