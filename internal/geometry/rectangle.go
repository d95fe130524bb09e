package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// Rectangle is an oriented bounding rectangle with corners in
// counterclockwise order.
type Rectangle struct {
	Corners [4]geom.Point
	Area    float64
}

// Ring returns the rectangle boundary as a closed ring of 5 coordinates
// (last equals first).
func (r *Rectangle) Ring() []geom.Point {
	return []geom.Point{r.Corners[0], r.Corners[1], r.Corners[2], r.Corners[3], r.Corners[0]}
}

// DistinctCorners counts the unique corner positions; degenerate inputs
// (collinear points) produce rectangles with coincident corners.
func (r *Rectangle) DistinctCorners() int {
	n := 0
	for i, c := range r.Corners {
		unique := true
		for j := 0; j < i; j++ {
			if c == r.Corners[j] {
				unique = false
				break
			}
		}
		if unique {
			n++
		}
	}
	return n
}

// MinimumRotatedRectangle computes the smallest-area rectangle, at any
// rotation, enclosing the point set. Candidate orientations come from the
// convex hull edges (rotating calipers); one of them is guaranteed to
// carry the minimum-area rectangle. Returns nil when no hull edge with
// positive length exists.
func MinimumRotatedRectangle(pts []geom.Point) *Rectangle {
	hull := ConvexHull(pts)
	if len(hull) < 2 {
		return nil
	}

	best := math.Inf(1)
	var bestU, bestV geom.Point
	var bestMinS, bestMaxS, bestMinT, bestMaxT float64
	found := false

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		if length == 0 {
			continue
		}
		// Unit vector along the edge and its perpendicular.
		u := geom.Point{X: (b.X - a.X) / length, Y: (b.Y - a.Y) / length}
		v := geom.Point{X: -u.Y, Y: u.X}

		minS, maxS := math.Inf(1), math.Inf(-1)
		minT, maxT := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			s := p.X*u.X + p.Y*u.Y
			t := p.X*v.X + p.Y*v.Y
			minS = math.Min(minS, s)
			maxS = math.Max(maxS, s)
			minT = math.Min(minT, t)
			maxT = math.Max(maxT, t)
		}

		area := (maxS - minS) * (maxT - minT)
		if area < best {
			best = area
			bestU, bestV = u, v
			bestMinS, bestMaxS, bestMinT, bestMaxT = minS, maxS, minT, maxT
			found = true
		}
	}
	if !found {
		return nil
	}

	corner := func(s, t float64) geom.Point {
		return geom.Point{X: bestU.X*s + bestV.X*t, Y: bestU.Y*s + bestV.Y*t}
	}
	return &Rectangle{
		Corners: [4]geom.Point{
			corner(bestMinS, bestMinT),
			corner(bestMaxS, bestMinT),
			corner(bestMaxS, bestMaxT),
			corner(bestMinS, bestMaxT),
		},
		Area: best,
	}
}
