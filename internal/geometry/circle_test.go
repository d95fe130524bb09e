package geometry

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
)

func TestMinimumBoundingCircleTwoPoints(t *testing.T) {
	c := MinimumBoundingCircle([]geom.Point{
		{X: -3, Y: 0},
		{X: 3, Y: 0},
	})

	assert.InDelta(t, 0.0, c.Center.X, 1e-12)
	assert.InDelta(t, 0.0, c.Center.Y, 1e-12)
	assert.InDelta(t, 3.0, c.R, 1e-12)
}

func TestMinimumBoundingCircleEquilateral(t *testing.T) {
	// Equilateral triangle inscribed in a unit circle at the origin.
	pts := make([]geom.Point, 3)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / 3
		pts[i] = geom.Point{X: math.Cos(a), Y: math.Sin(a)}
	}

	c := MinimumBoundingCircle(pts)
	assert.InDelta(t, 0.0, c.Center.X, 1e-9)
	assert.InDelta(t, 0.0, c.Center.Y, 1e-9)
	assert.InDelta(t, 1.0, c.R, 1e-9)
}

func TestMinimumBoundingCircleInteriorIgnored(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 1},
		{X: 5, Y: -2},
	}

	c := MinimumBoundingCircle(pts)
	assert.InDelta(t, 5.0, c.R, 1e-9)
	for _, p := range pts {
		assert.LessOrEqual(t, math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y), c.R*(1+1e-9))
	}
}

func TestMinimumBoundingCircleDeterministic(t *testing.T) {
	pts := []geom.Point{
		{X: 2, Y: 7}, {X: 9, Y: 1}, {X: 4, Y: 4}, {X: 0, Y: 3}, {X: 6, Y: 8},
	}

	a := MinimumBoundingCircle(pts)
	b := MinimumBoundingCircle(pts)
	assert.Equal(t, a, b)
}

func TestMinimumBoundingCircleEmpty(t *testing.T) {
	c := MinimumBoundingCircle(nil)
	assert.Equal(t, Circle{}, c)
	assert.Equal(t, 0.0, c.Area())
}

func TestApproxBoundingCircleEnclosesAndOverestimates(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 4}, {X: 3, Y: 2},
	}

	approx := ApproxBoundingCircle(pts)
	exact := MinimumBoundingCircle(pts)

	for _, p := range pts {
		assert.LessOrEqual(t, math.Hypot(p.X-approx.Center.X, p.Y-approx.Center.Y), approx.R*(1+1e-9))
	}
	assert.GreaterOrEqual(t, approx.R, exact.R-1e-9)
}
