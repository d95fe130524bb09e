package analysis

import (
	"github.com/ctessum/geom"

	"github.com/yz3440/nyc-park-study/internal/geometry"
)

const (
	// maxSearchIterations bounds the tolerance search, capping the
	// worst-case per-feature cost.
	maxSearchIterations = 200

	// convergenceEpsilon stops the search once the tolerance interval is
	// too narrow to change the outcome.
	convergenceEpsilon = 1e-5
)

// AnalyzeTriangularity binary-searches a Douglas-Peucker tolerance that
// simplifies the projected hull's exterior ring to exactly three
// vertices, then reports the resulting triangle's shape. When no
// tolerance yields a triangle, the simplification whose vertex count came
// closest to three is used instead; if even that does not exist, the
// record stays entirely null.
//
// Vertex count is not formally guaranteed to decrease monotonically with
// tolerance, so the search tracks the best observed approximation rather
// than assuming the bisection always lands on it.
func (a *Analyzer) AnalyzeTriangularity(hull geom.Polygon) (*TriangularityAnalysis, error) {
	out := &TriangularityAnalysis{}
	if len(hull) == 0 {
		return out, nil
	}

	ring := hull[0]
	perimeter := geometry.RingPerimeter(ring)

	// Doubling the perimeter guarantees over-simplification collapses
	// the ring well below three vertices.
	minTolerance := 0.0
	maxTolerance := perimeter * 2
	tolerance := 1.0

	var best []geom.Point
	bestCount := 0
	var accepted []geom.Point

	for i := 0; i < maxSearchIterations; i++ {
		simplified := geometry.SimplifyRing(ring, tolerance)
		vertices := geometry.RingVertices(simplified)
		n := len(vertices)

		if n < 3 {
			// Collapsed into a non-polygon: over-simplified.
			maxTolerance = tolerance
			tolerance = (minTolerance + maxTolerance) / 2
			if maxTolerance-minTolerance < convergenceEpsilon {
				accepted = best
				break
			}
			continue
		}

		if best == nil || abs(n-3) < abs(bestCount-3) {
			best = vertices
			bestCount = n
		}

		if n == 3 {
			accepted = vertices
			break
		}

		// n > 3: not simplified enough.
		minTolerance = tolerance
		tolerance = (minTolerance + maxTolerance) / 2

		if maxTolerance-minTolerance < convergenceEpsilon {
			accepted = best
			break
		}
	}

	if accepted == nil {
		accepted = best
	}
	if accepted == nil {
		// No tolerance ever produced a polygon.
		return out, nil
	}

	geodetic, err := a.Proj.InversePoints(accepted)
	if err != nil {
		return out, err
	}

	out.DPTolerance = ptr(tolerance)
	out.TriangleVertices = pointsToPairs(geodetic)
	out.TriangleNumVertices = intPtr(len(accepted))

	triangle := geom.Polygon{geometry.CloseRing(accepted)}
	triArea := triangle.Area()
	out.TriangleAreaSqm = ptr(triArea)
	out.TrianglePerimeterM = ptr(geometry.RingPerimeter(accepted))
	if triArea > 0 {
		out.Triangularity = ptr(hull.Area() / triArea)
	}

	edges := geometry.EdgeLengths(accepted)
	out.TriangleEdgeLengths = edges
	if len(edges) > 0 {
		minEdge, maxEdge := edges[0], edges[0]
		for _, e := range edges[1:] {
			if e < minEdge {
				minEdge = e
			}
			if e > maxEdge {
				maxEdge = e
			}
		}
		if maxEdge > 0 {
			out.TriangleRegularity = ptr(minEdge / maxEdge)
		}
	}

	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
