// Package analysis derives shape descriptors for park hull polygons:
// circle-based compactness indices, the minimum rotated rectangle, and a
// triangular approximation found by binary-searching a simplification
// tolerance. Each analyzer is a pure function of one projected polygon.
package analysis

// Property keys under which the result records are attached to features.
const (
	CircleKey         = "circle_analysis"
	RectangularityKey = "rectangularity_analysis"
	TriangularityKey  = "triangularity_analysis"
)

// CircleAnalysis holds the circle-based compactness metrics of one hull.
// Nil fields serialize as JSON null; a field is nil only when its divisor
// was zero, or the whole record is null when no hull was present.
type CircleAnalysis struct {
	// Planar area and boundary length of the hull, in meters.
	CHAreaSqm    *float64 `json:"ch_area_sqm"`
	CHPerimeterM *float64 `json:"ch_perimeter_m"`

	// PolsbyPopper is 4*pi*area/perimeter^2, in (0,1] with 1 a circle.
	PolsbyPopper *float64 `json:"polsby_popper"`

	// Schwartzberg is perimeter/(2*pi*sqrt(area/pi)); 1 for a circle,
	// larger for less compact shapes.
	Schwartzberg *float64 `json:"schwartzberg"`

	// ReockCompactness is the hull area divided by the area of its
	// minimum bounding circle.
	ReockCompactness *float64 `json:"reock_compactness"`

	CircumscribedCircleRadius *float64 `json:"circumscribed_circle_radius"`
	CircumscribedCircleArea   *float64 `json:"circumscribed_circle_area"`
}

// RectangularityAnalysis holds the minimum rotated rectangle metrics.
type RectangularityAnalysis struct {
	// MRRVertices is the rectangle boundary as a closed ring of five
	// geodetic [lon, lat] pairs (last equals first).
	MRRVertices [][]float64 `json:"mrr_vertices"`

	// Width is the longer rectangle edge, height the shorter, in meters.
	MRRWidth  *float64 `json:"mrr_width"`
	MRRHeight *float64 `json:"mrr_height"`

	// MRRRotationDegrees is the angle of the width edge counterclockwise
	// from the planar x axis, normalized into [0, 180).
	MRRRotationDegrees *float64 `json:"mrr_rotation_degrees"`

	MRRAreaSqm *float64 `json:"mrr_area_sqm"`

	// MRRRectangularity is hull area / rectangle area (1 = rectangle).
	MRRRectangularity *float64 `json:"mrr_rectangularity"`

	// MRROriginalRatio compares the un-simplified source geometry's area
	// (an upstream property) against the rectangle area.
	MRROriginalRatio *float64 `json:"mrr_original_ratio"`
}

// TriangularityAnalysis holds the triangular-approximation metrics.
type TriangularityAnalysis struct {
	// DPTolerance is the Douglas-Peucker tolerance probe at which the
	// search stopped.
	DPTolerance *float64 `json:"dp_tolerance"`

	// TriangleVertices are the geodetic [lon, lat] vertices of the
	// accepted simplification, without a closing duplicate.
	TriangleVertices [][]float64 `json:"triangle_vertices"`

	// TriangleNumVertices is the vertex count actually achieved; it may
	// exceed 3 when the search settled on a best-effort shape.
	TriangleNumVertices *int `json:"triangle_num_vertices"`

	TriangleAreaSqm    *float64 `json:"triangle_area_sqm"`
	TrianglePerimeterM *float64 `json:"triangle_perimeter_m"`

	// Triangularity is hull area / triangle area.
	Triangularity *float64 `json:"triangularity"`

	// TriangleEdgeLengths are the cyclic planar edge lengths in meters.
	TriangleEdgeLengths []float64 `json:"triangle_edge_lengths"`

	// TriangleRegularity is min edge / max edge; 1.0 means equilateral
	// for a true triangle.
	TriangleRegularity *float64 `json:"triangle_regularity"`
}

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
