package analysis

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/yz3440/nyc-park-study/internal/geometry"
)

// AnalyzeRectangularity computes the minimum rotated rectangle of a
// projected hull polygon and the ratios derived from it. originalArea is
// the upstream area_sqm property of the un-simplified source geometry;
// nil when that property is absent.
func (a *Analyzer) AnalyzeRectangularity(hull geom.Polygon, originalArea *float64) (*RectangularityAnalysis, error) {
	out := &RectangularityAnalysis{}

	rect := geometry.MinimumRotatedRectangle(geometry.PolygonVertices(hull))
	if rect == nil {
		// Degenerate hull, nothing to measure.
		return out, nil
	}

	ring := rect.Ring()
	geodetic, err := a.Proj.InversePoints(ring)
	if err != nil {
		return out, err
	}
	out.MRRVertices = pointsToPairs(geodetic)
	out.MRRAreaSqm = ptr(rect.Area)

	if rect.DistinctCorners() >= 4 {
		edge1 := math.Hypot(ring[1].X-ring[0].X, ring[1].Y-ring[0].Y)
		edge2 := math.Hypot(ring[2].X-ring[1].X, ring[2].Y-ring[1].Y)
		out.MRRWidth = ptr(math.Max(edge1, edge2))
		out.MRRHeight = ptr(math.Min(edge1, edge2))

		// Rotation follows whichever edge is the width. Equal edges (a
		// square) fall through to the second edge; the tie-break is
		// implementation-defined and the two answers differ by 90
		// degrees, which a square's symmetry makes equivalent.
		var dx, dy float64
		if edge1 > edge2 {
			dx, dy = ring[1].X-ring[0].X, ring[1].Y-ring[0].Y
		} else {
			dx, dy = ring[2].X-ring[1].X, ring[2].Y-ring[1].Y
		}
		degrees := math.Atan2(dy, dx) * 180 / math.Pi
		if degrees < 0 {
			degrees += 180
		} else if degrees >= 180 {
			degrees -= 180
		}
		out.MRRRotationDegrees = ptr(degrees)
	}

	if rect.Area > 0 {
		out.MRRRectangularity = ptr(hull.Area() / rect.Area)
		if originalArea != nil {
			out.MRROriginalRatio = ptr(*originalArea / rect.Area)
		}
	}

	return out, nil
}

func pointsToPairs(pts []geom.Point) [][]float64 {
	pairs := make([][]float64, len(pts))
	for i, p := range pts {
		pairs[i] = []float64{p.X, p.Y}
	}
	return pairs
}
