// Package projection wraps the geodetic to planar coordinate transform
// shared by all shape analyzers, so that areas, lengths and angles are
// measured in meters rather than degrees.
package projection

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// geodetic is the CRS of the input dataset (WGS84 longitude/latitude).
const geodetic = "+proj=longlat +datum=WGS84 +no_defs"

// Error reports a geometry that could not be projected.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("projection: %s: %v", e.Reason, e.Err)
	}
	return "projection: " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// Projector converts geometries between geodetic and planar coordinates.
// It is stateless after construction and safe for concurrent use.
type Projector struct {
	forward proj.Transformer
	inverse proj.Transformer
}

// New builds a projector targeting the planar CRS described by the
// proj4 string, with WGS84 longitude/latitude on the geodetic side.
func New(planar string) (*Projector, error) {
	src, err := proj.Parse(geodetic)
	if err != nil {
		return nil, fmt.Errorf("projection: parsing geodetic CRS: %w", err)
	}
	dst, err := proj.Parse(planar)
	if err != nil {
		return nil, fmt.Errorf("projection: parsing planar CRS %q: %w", planar, err)
	}

	forward, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("projection: building forward transform: %w", err)
	}
	inverse, err := dst.NewTransform(src)
	if err != nil {
		return nil, fmt.Errorf("projection: building inverse transform: %w", err)
	}

	return &Projector{forward: forward, inverse: inverse}, nil
}

// Forward reprojects a geodetic polygon into planar metric coordinates.
func (pr *Projector) Forward(p geom.Polygon) (geom.Polygon, error) {
	if err := validatePolygon(p); err != nil {
		return nil, err
	}
	g, err := p.Transform(pr.forward)
	if err != nil {
		return nil, &Error{Reason: "forward transform failed", Err: err}
	}
	return g.(geom.Polygon), nil
}

// ForwardMulti reprojects every polygon of a geodetic multipolygon.
func (pr *Projector) ForwardMulti(mp geom.MultiPolygon) (geom.MultiPolygon, error) {
	out := make(geom.MultiPolygon, len(mp))
	for i, p := range mp {
		pp, err := pr.Forward(p)
		if err != nil {
			return nil, err
		}
		out[i] = pp
	}
	return out, nil
}

// InversePoints maps planar points back to geodetic coordinates, for
// storing derived vertices alongside the original dataset.
func (pr *Projector) InversePoints(pts []geom.Point) ([]geom.Point, error) {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		x, y, err := pr.inverse(p.X, p.Y)
		if err != nil {
			return nil, &Error{Reason: "inverse transform failed", Err: err}
		}
		out[i] = geom.Point{X: x, Y: y}
	}
	return out, nil
}

func validatePolygon(p geom.Polygon) error {
	if len(p) == 0 {
		return &Error{Reason: "empty polygon"}
	}
	for _, ring := range p {
		if len(ring) == 0 {
			return &Error{Reason: "empty ring"}
		}
		for _, pt := range ring {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) ||
				math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
				return &Error{Reason: "non-finite coordinate"}
			}
		}
	}
	return nil
}
