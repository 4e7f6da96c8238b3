package spatial

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Polygon is a closed spherical region built from a user-drawn ring,
// used to resolve bulk spatial selections against batch points.
type Polygon struct {
	loop *s2.Loop
}

// NewPolygon builds a polygon from [longitude, latitude] vertex pairs.
// A GeoJSON-style closing vertex equal to the first is dropped. At
// least three distinct vertices are required.
func NewPolygon(vertices [][2]float64) (*Polygon, error) {
	if n := len(vertices); n > 1 && vertices[0] == vertices[n-1] {
		vertices = vertices[:n-1]
	}
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon requires at least 3 vertices, got %d", len(vertices))
	}

	pts := make([]s2.Point, 0, len(vertices))
	for _, v := range vertices {
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(v[1], v[0])))
	}

	loop := s2.LoopFromPoints(pts)
	// Drawn rings arrive in either winding order; keep the bounded side.
	if !loop.IsNormalized() {
		loop.Invert()
	}
	return &Polygon{loop: loop}, nil
}

// Contains reports whether the coordinate lies inside the polygon.
func (p *Polygon) Contains(lat, lng float64) bool {
	return p.loop.ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng)))
}
