package geometry

import (
	"github.com/ctessum/geom"
)

// SimplifyRing reduces a closed ring with the Douglas-Peucker algorithm.
// The ring is treated as an open polyline between its two (identical)
// endpoints, which are always kept; no topology preservation is applied,
// so large tolerances may collapse the ring below three distinct
// vertices. The stack-based traversal avoids recursion.
func SimplifyRing(ring []geom.Point, tolerance float64) []geom.Point {
	if len(ring) < 3 {
		return append([]geom.Point(nil), ring...)
	}

	keep := make([]bool, len(ring))
	keep[0] = true
	keep[len(ring)-1] = true

	tol2 := tolerance * tolerance
	stack := [][2]int{{0, len(ring) - 1}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		start, end := seg[0], seg[1]

		maxDist2 := 0.0
		maxIndex := 0
		for i := start + 1; i < end; i++ {
			d2 := distToSegmentSquared(ring[i], ring[start], ring[end])
			if d2 > maxDist2 {
				maxDist2 = d2
				maxIndex = i
			}
		}

		if maxDist2 > tol2 {
			keep[maxIndex] = true
			stack = append(stack, [2]int{start, maxIndex}, [2]int{maxIndex, end})
		}
	}

	out := make([]geom.Point, 0, len(ring))
	for i, k := range keep {
		if k {
			out = append(out, ring[i])
		}
	}
	return out
}

// distToSegmentSquared returns the squared distance from p to the finite
// segment ab.
func distToSegmentSquared(p, a, b geom.Point) float64 {
	x, y := a.X, a.Y
	dx, dy := b.X-a.X, b.Y-a.Y

	if dx != 0 || dy != 0 {
		t := ((p.X-x)*dx + (p.Y-y)*dy) / (dx*dx + dy*dy)
		if t > 1 {
			x, y = b.X, b.Y
		} else if t > 0 {
			x += dx * t
			y += dy * t
		}
	}

	dx, dy = p.X-x, p.Y-y
	return dx*dx + dy*dy
}
