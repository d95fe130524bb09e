package analysis

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yz3440/nyc-park-study/internal/config"
	"github.com/yz3440/nyc-park-study/internal/geo"
	"github.com/yz3440/nyc-park-study/internal/projection"
)

// Planar test shapes are laid out near this UTM 18N coordinate, which
// falls inside Manhattan.
var testOrigin = geom.Point{X: 586000, Y: 4515000}

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	pr, err := projection.New(config.DefaultProjection)
	require.NoError(t, err)
	return New(pr)
}

// hullFeature builds a feature whose hull property holds the geodetic
// image of the given planar ring (open, without closing duplicate).
func hullFeature(t *testing.T, a *Analyzer, planar []geom.Point) *geo.Feature {
	t.Helper()

	geodetic, err := a.Proj.InversePoints(planar)
	require.NoError(t, err)

	ring := make([][]float64, 0, len(geodetic)+1)
	for _, p := range geodetic {
		ring = append(ring, []float64{p.X, p.Y})
	}
	ring = append(ring, ring[0])

	return &geo.Feature{
		Type: "Feature",
		Properties: map[string]interface{}{
			a.HullKey: map[string]interface{}{
				"type":        "Polygon",
				"coordinates": [][][]float64{ring},
			},
		},
	}
}

// regularPolygon returns n planar vertices of a regular n-gon.
func regularPolygon(n int, radius float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Point{
			X: testOrigin.X + radius*math.Cos(angle),
			Y: testOrigin.Y + radius*math.Sin(angle),
		}
	}
	return pts
}

func TestAnalyzeFeatureNearCircle(t *testing.T) {
	a := newAnalyzer(t)
	f := hullFeature(t, a, regularPolygon(360, 200))

	require.NoError(t, a.AnalyzeFeature(f))

	circle, ok := f.Properties[CircleKey].(*CircleAnalysis)
	require.True(t, ok)
	require.NotNil(t, circle.PolsbyPopper)
	require.NotNil(t, circle.Schwartzberg)
	require.NotNil(t, circle.ReockCompactness)

	// A 360-gon is close enough to a circle that every index is near 1.
	// The projection roundtrip distorts the shape by far less than the
	// asserted tolerance.
	assert.InDelta(t, 1.0, *circle.PolsbyPopper, 0.01)
	assert.InDelta(t, 1.0, *circle.Schwartzberg, 0.01)
	assert.InDelta(t, 1.0, *circle.ReockCompactness, 0.01)

	require.NotNil(t, circle.CircumscribedCircleRadius)
	assert.InDelta(t, 200, *circle.CircumscribedCircleRadius, 2)
}

func TestAnalyzeFeatureSquare(t *testing.T) {
	a := newAnalyzer(t)
	side := 300.0
	f := hullFeature(t, a, []geom.Point{
		{X: testOrigin.X, Y: testOrigin.Y},
		{X: testOrigin.X + side, Y: testOrigin.Y},
		{X: testOrigin.X + side, Y: testOrigin.Y + side},
		{X: testOrigin.X, Y: testOrigin.Y + side},
	})

	require.NoError(t, a.AnalyzeFeature(f))

	rect, ok := f.Properties[RectangularityKey].(*RectangularityAnalysis)
	require.True(t, ok)
	require.NotNil(t, rect.MRRWidth)
	require.NotNil(t, rect.MRRHeight)
	require.NotNil(t, rect.MRRRectangularity)

	assert.InDelta(t, side, *rect.MRRWidth, 1)
	assert.InDelta(t, side, *rect.MRRHeight, 1)
	assert.InDelta(t, 1.0, *rect.MRRRectangularity, 0.01)
	assert.Len(t, rect.MRRVertices, 5)
	assert.Equal(t, rect.MRRVertices[0], rect.MRRVertices[4])

	require.NotNil(t, rect.MRRRotationDegrees)
	assert.GreaterOrEqual(t, *rect.MRRRotationDegrees, 0.0)
	assert.Less(t, *rect.MRRRotationDegrees, 180.0)

	// Square is the least circle-like rectangle: Polsby-Popper pi/4.
	circle, ok := f.Properties[CircleKey].(*CircleAnalysis)
	require.True(t, ok)
	require.NotNil(t, circle.PolsbyPopper)
	assert.InDelta(t, math.Pi/4, *circle.PolsbyPopper, 0.01)
}

func TestAnalyzeFeatureOriginalRatio(t *testing.T) {
	a := newAnalyzer(t)
	f := hullFeature(t, a, []geom.Point{
		{X: testOrigin.X, Y: testOrigin.Y},
		{X: testOrigin.X + 100, Y: testOrigin.Y},
		{X: testOrigin.X + 100, Y: testOrigin.Y + 100},
		{X: testOrigin.X, Y: testOrigin.Y + 100},
	})
	f.Properties[a.AreaKey] = 5000.0

	require.NoError(t, a.AnalyzeFeature(f))

	rect := f.Properties[RectangularityKey].(*RectangularityAnalysis)
	require.NotNil(t, rect.MRROriginalRatio)
	assert.InDelta(t, 0.5, *rect.MRROriginalRatio, 0.01)
}

func TestAnalyzeFeatureTriangleInput(t *testing.T) {
	a := newAnalyzer(t)
	f := hullFeature(t, a, regularPolygon(3, 250))

	require.NoError(t, a.AnalyzeFeature(f))

	tri, ok := f.Properties[TriangularityKey].(*TriangularityAnalysis)
	require.True(t, ok)
	require.NotNil(t, tri.TriangleNumVertices)
	assert.Equal(t, 3, *tri.TriangleNumVertices)
	assert.Len(t, tri.TriangleVertices, 3)
	assert.Len(t, tri.TriangleEdgeLengths, 3)

	// The input is already a triangle, so the first probe succeeds.
	require.NotNil(t, tri.DPTolerance)
	assert.Equal(t, 1.0, *tri.DPTolerance)

	require.NotNil(t, tri.Triangularity)
	assert.InDelta(t, 1.0, *tri.Triangularity, 0.01)

	require.NotNil(t, tri.TriangleRegularity)
	assert.InDelta(t, 1.0, *tri.TriangleRegularity, 0.01)
}

func TestAnalyzeFeatureHexagonBestEffort(t *testing.T) {
	a := newAnalyzer(t)
	f := hullFeature(t, a, regularPolygon(6, 300))

	require.NoError(t, a.AnalyzeFeature(f))

	// A regular hexagon never simplifies to exactly three vertices:
	// symmetric vertex pairs are removed together, so the count jumps
	// from four to two. The search settles on the closest shape.
	tri, ok := f.Properties[TriangularityKey].(*TriangularityAnalysis)
	require.True(t, ok)
	require.NotNil(t, tri.TriangleNumVertices)
	assert.Equal(t, 4, *tri.TriangleNumVertices)
	assert.NotNil(t, tri.TriangleAreaSqm)
	assert.NotNil(t, tri.Triangularity)
}

func TestAnalyzeFeatureMissingHull(t *testing.T) {
	a := newAnalyzer(t)
	f := &geo.Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{"signname": "Central Park"},
	}

	require.NoError(t, a.AnalyzeFeature(f))

	for _, key := range []string{CircleKey, RectangularityKey, TriangularityKey} {
		v, present := f.Properties[key]
		assert.True(t, present, key)
		assert.Nil(t, v, key)
	}
}

func TestAnalyzeFeatureNullHull(t *testing.T) {
	a := newAnalyzer(t)
	f := &geo.Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{a.HullKey: nil},
	}

	require.NoError(t, a.AnalyzeFeature(f))
	assert.Nil(t, f.Properties[CircleKey])
}

func TestAnalyzeFeatureInvalidHull(t *testing.T) {
	a := newAnalyzer(t)
	f := &geo.Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{a.HullKey: "not a polygon"},
	}

	assert.Error(t, a.AnalyzeFeature(f))
	assert.Nil(t, f.Properties[CircleKey])
	assert.Nil(t, f.Properties[RectangularityKey])
	assert.Nil(t, f.Properties[TriangularityKey])
}

func TestAnalyzeFeatureIdempotent(t *testing.T) {
	a := newAnalyzer(t)
	f := hullFeature(t, a, regularPolygon(5, 120))

	require.NoError(t, a.AnalyzeFeature(f))
	first, err := json.Marshal(f)
	require.NoError(t, err)

	require.NoError(t, a.AnalyzeFeature(f))
	second, err := json.Marshal(f)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestAnalyzeCircleDegenerate(t *testing.T) {
	a := newAnalyzer(t)

	// A zero-area sliver: all vertices on a line.
	hull := geom.Polygon{{
		{X: testOrigin.X, Y: testOrigin.Y},
		{X: testOrigin.X + 50, Y: testOrigin.Y},
		{X: testOrigin.X, Y: testOrigin.Y},
	}}

	out := a.AnalyzeCircle(hull)
	require.NotNil(t, out.CHAreaSqm)
	assert.Equal(t, 0.0, *out.CHAreaSqm)
	assert.Nil(t, out.Schwartzberg)
	require.NotNil(t, out.PolsbyPopper)
	assert.Equal(t, 0.0, *out.PolsbyPopper)
}

func TestRunPreservesOrderAndCompletes(t *testing.T) {
	a := newAnalyzer(t)

	fc := &geo.FeatureCollection{Type: "FeatureCollection"}
	for i := 0; i < 10; i++ {
		f := hullFeature(t, a, regularPolygon(4+i, 100))
		f.Properties["index"] = float64(i)
		fc.Features = append(fc.Features, *f)
	}
	// A broken feature in the middle must not abort the batch.
	fc.Features[5].Properties[a.HullKey] = "garbage"

	a.Run(fc, 4)

	for i := range fc.Features {
		idx, ok := fc.Features[i].FloatProperty("index")
		require.True(t, ok)
		assert.Equal(t, float64(i), idx)

		v, present := fc.Features[i].Properties[CircleKey]
		assert.True(t, present, "feature %d", i)
		if i == 5 {
			assert.Nil(t, v)
		} else {
			assert.NotNil(t, v)
		}
	}
}
