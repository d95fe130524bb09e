package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// RingVertices returns the vertices of a ring without the closing
// duplicate, if the ring carries one.
func RingVertices(ring []geom.Point) []geom.Point {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

// CloseRing appends the opening vertex when the ring is not yet closed.
func CloseRing(ring []geom.Point) []geom.Point {
	if len(ring) == 0 || ring[0] == ring[len(ring)-1] {
		return ring
	}
	return append(append([]geom.Point(nil), ring...), ring[0])
}

// EdgeLengths returns the cyclic edge lengths of a vertex sequence:
// edge i connects vertex i to vertex (i+1) mod n.
func EdgeLengths(vertices []geom.Point) []float64 {
	n := len(vertices)
	if n < 2 {
		return nil
	}
	lengths := make([]float64, n)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		lengths[i] = math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return lengths
}

// RingPerimeter returns the boundary length of a ring, counting the
// closing edge whether or not the ring repeats its first vertex.
func RingPerimeter(ring []geom.Point) float64 {
	total := 0.0
	for _, l := range EdgeLengths(RingVertices(ring)) {
		total += l
	}
	return total
}

// PolygonPerimeter returns the total boundary length of a polygon,
// including any interior rings.
func PolygonPerimeter(p geom.Polygon) float64 {
	total := 0.0
	for _, ring := range p {
		total += RingPerimeter(ring)
	}
	return total
}

// PolygonVertices flattens the distinct vertices of every ring of p,
// dropping closing duplicates.
func PolygonVertices(p geom.Polygon) []geom.Point {
	var pts []geom.Point
	for _, ring := range p {
		pts = append(pts, RingVertices(ring)...)
	}
	return pts
}
