// Package geometry implements the planar primitives behind the shape
// analyzers: convex hull, minimum rotated rectangle, bounding circles
// and Douglas-Peucker ring simplification.
package geometry

import (
	"sort"

	"github.com/ctessum/geom"
)

// ConvexHull computes the convex hull of a point set using the monotone
// chain algorithm. The hull is returned in counterclockwise order without
// a closing duplicate. Collinear input collapses to two points.
func ConvexHull(pts []geom.Point) []geom.Point {
	if len(pts) <= 1 {
		return append([]geom.Point(nil), pts...)
	}

	p := append([]geom.Point(nil), pts...)
	sort.Slice(p, func(i, j int) bool {
		if p[i].X != p[j].X {
			return p[i].X < p[j].X
		}
		return p[i].Y < p[j].Y
	})
	p = dedupe(p)
	if len(p) <= 1 {
		return p
	}

	lower := halfHull(p)
	upper := halfHull(reversed(p))

	hull := make([]geom.Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

func halfHull(p []geom.Point) []geom.Point {
	h := make([]geom.Point, 0, len(p))
	for _, pt := range p {
		for len(h) >= 2 && cross(h[len(h)-2], h[len(h)-1], pt) <= 0 {
			h = h[:len(h)-1]
		}
		h = append(h, pt)
	}
	return h
}

func dedupe(p []geom.Point) []geom.Point {
	out := p[:1]
	for _, pt := range p[1:] {
		if pt != out[len(out)-1] {
			out = append(out, pt)
		}
	}
	return out
}

func reversed(p []geom.Point) []geom.Point {
	out := make([]geom.Point, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// cross returns the z component of (a-o) x (b-o): positive for a left
// turn, negative for a right turn, zero for collinear points.
func cross(o, a, b geom.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
