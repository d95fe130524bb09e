package analysis

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/yz3440/nyc-park-study/internal/geometry"
)

// AnalyzeCircle computes the circle-based compactness indices of a
// projected hull polygon. Every ratio guards its divisor and reports nil
// instead of dividing by zero.
func (a *Analyzer) AnalyzeCircle(hull geom.Polygon) *CircleAnalysis {
	out := &CircleAnalysis{}

	area := hull.Area()
	perimeter := geometry.PolygonPerimeter(hull)
	out.CHAreaSqm = ptr(area)
	out.CHPerimeterM = ptr(perimeter)

	if perimeter > 0 {
		out.PolsbyPopper = ptr(4 * math.Pi * area / (perimeter * perimeter))
	}
	if area > 0 {
		out.Schwartzberg = ptr(perimeter / (2 * math.Pi * math.Sqrt(area/math.Pi)))
	}

	circle := a.BoundingCircle(geometry.PolygonVertices(hull))
	circleArea := circle.Area()
	if circleArea > 0 {
		out.ReockCompactness = ptr(area / circleArea)
		out.CircumscribedCircleRadius = ptr(math.Sqrt(circleArea / math.Pi))
		out.CircumscribedCircleArea = ptr(circleArea)
	}

	return out
}
