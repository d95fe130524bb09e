package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// Circle is a center point with a radius.
type Circle struct {
	Center geom.Point
	R      float64
}

// Area returns the circle's area.
func (c Circle) Area() float64 {
	return math.Pi * c.R * c.R
}

// Multiplicative tolerance for containment checks; compensates for
// rounding in the circumcircle computation.
const containsEpsilon = 1 + 1e-14

func (c Circle) contains(p geom.Point) bool {
	return math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y) <= c.R*containsEpsilon
}

// BoundingCircleFunc computes a circle enclosing a point set. Two
// strategies exist: the exact MinimumBoundingCircle and the
// ApproxBoundingCircle upper bound. The caller picks one at
// construction time.
type BoundingCircleFunc func([]geom.Point) Circle

// MinimumBoundingCircle computes the exact smallest circle enclosing the
// point set, using the incremental one-point / two-point construction.
// The scan order is the input order, so results are deterministic.
func MinimumBoundingCircle(pts []geom.Point) Circle {
	c := Circle{R: -1}
	for i, p := range pts {
		if c.R < 0 || !c.contains(p) {
			c = circleWithBoundaryPoint(pts[:i+1], p)
		}
	}
	if c.R < 0 {
		return Circle{}
	}
	return c
}

// circleWithBoundaryPoint finds the smallest circle enclosing pts that
// has p on its boundary.
func circleWithBoundaryPoint(pts []geom.Point, p geom.Point) Circle {
	c := Circle{Center: p, R: 0}
	for i, q := range pts {
		if c.contains(q) {
			continue
		}
		if c.R == 0 {
			c = circleFromDiameter(p, q)
		} else {
			c = circleWithBoundaryPoints(pts[:i+1], p, q)
		}
	}
	return c
}

// circleWithBoundaryPoints finds the smallest circle enclosing pts that
// has both p and q on its boundary.
func circleWithBoundaryPoints(pts []geom.Point, p, q geom.Point) Circle {
	circ := circleFromDiameter(p, q)
	left := Circle{R: -1}
	right := Circle{R: -1}

	for _, r := range pts {
		if circ.contains(r) {
			continue
		}
		side := cross(p, q, r)
		c := circumcircle(p, q, r)
		if c.R < 0 {
			continue
		}
		if side > 0 && (left.R < 0 || cross(p, q, c.Center) > cross(p, q, left.Center)) {
			left = c
		} else if side < 0 && (right.R < 0 || cross(p, q, c.Center) < cross(p, q, right.Center)) {
			right = c
		}
	}

	switch {
	case left.R < 0 && right.R < 0:
		return circ
	case left.R < 0:
		return right
	case right.R < 0:
		return left
	case left.R <= right.R:
		return left
	default:
		return right
	}
}

func circleFromDiameter(a, b geom.Point) Circle {
	center := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	r := math.Max(
		math.Hypot(a.X-center.X, a.Y-center.Y),
		math.Hypot(b.X-center.X, b.Y-center.Y))
	return Circle{Center: center, R: r}
}

// circumcircle returns the circle through three points, or R = -1 when
// they are collinear. Coordinates are offset to the bounding-box center
// first for numerical stability.
func circumcircle(a, b, c geom.Point) Circle {
	ox := (math.Min(math.Min(a.X, b.X), c.X) + math.Max(math.Max(a.X, b.X), c.X)) / 2
	oy := (math.Min(math.Min(a.Y, b.Y), c.Y) + math.Max(math.Max(a.Y, b.Y), c.Y)) / 2
	ax, ay := a.X-ox, a.Y-oy
	bx, by := b.X-ox, b.Y-oy
	cx, cy := c.X-ox, c.Y-oy

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return Circle{R: -1}
	}
	x := ox + ((ax*ax+ay*ay)*(by-cy)+(bx*bx+by*by)*(cy-ay)+(cx*cx+cy*cy)*(ay-by))/d
	y := oy + ((ax*ax+ay*ay)*(cx-bx)+(bx*bx+by*by)*(ax-cx)+(cx*cx+cy*cy)*(bx-ax))/d

	center := geom.Point{X: x, Y: y}
	r := math.Max(math.Hypot(a.X-x, a.Y-y),
		math.Max(math.Hypot(b.X-x, b.Y-y), math.Hypot(c.X-x, c.Y-y)))
	return Circle{Center: center, R: r}
}

// ApproxBoundingCircle centers a circle on the convex hull's bounding-box
// center and uses the maximum center-to-vertex distance as radius. The
// circle always encloses the point set but it is an upper-bound
// approximation, not the true minimum enclosing circle.
func ApproxBoundingCircle(pts []geom.Point) Circle {
	hull := ConvexHull(pts)
	if len(hull) == 0 {
		return Circle{}
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range hull {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	center := geom.Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}

	maxDist := 0.0
	for _, p := range hull {
		maxDist = math.Max(maxDist, math.Hypot(p.X-center.X, p.Y-center.Y))
	}
	return Circle{Center: center, R: maxDist}
}
