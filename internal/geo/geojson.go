// Package geo handles GeoJSON feature collections and geometry decoding.
package geo

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
)

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a single geographic feature. The geometry is kept as
// raw JSON until a processing step actually needs it decoded.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   json.RawMessage        `json:"geometry,omitempty"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry is the type/coordinates pair of a GeoJSON geometry, with the
// coordinates left raw so that Polygon and MultiPolygon can share a struct.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// DecodeGeometry parses a raw GeoJSON geometry into a geom type.
// Only Polygon and MultiPolygon are supported; the parks dataset
// contains nothing else.
func DecodeGeometry(raw json.RawMessage) (geom.Geom, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("geo: empty geometry")
	}

	var g Geometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("geo: parsing geometry: %w", err)
	}

	switch g.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("geo: parsing Polygon coordinates: %w", err)
		}
		return toPolygon(coords), nil
	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("geo: parsing MultiPolygon coordinates: %w", err)
		}
		mp := make(geom.MultiPolygon, len(coords))
		for i, p := range coords {
			mp[i] = toPolygon(p)
		}
		return mp, nil
	default:
		return nil, fmt.Errorf("geo: unsupported geometry type %q", g.Type)
	}
}

func toPolygon(coords [][][]float64) geom.Polygon {
	p := make(geom.Polygon, len(coords))
	for i, ring := range coords {
		p[i] = make([]geom.Point, len(ring))
		for j, c := range ring {
			p[i][j] = geom.Point{X: c[0], Y: c[1]}
		}
	}
	return p
}

// PolygonProperty decodes a geometry record stored in the feature's
// property mapping (for example an upstream hull polygon). The second
// return value reports whether the property was present at all.
func (f *Feature) PolygonProperty(key string) (geom.Polygon, bool, error) {
	v, ok := f.Properties[key]
	if !ok || v == nil {
		return nil, false, nil
	}

	// The property was decoded as generic JSON; round-trip it through the
	// geojson codec to obtain a typed geometry.
	data, err := json.Marshal(v)
	if err != nil {
		return nil, true, fmt.Errorf("geo: property %q: %w", key, err)
	}
	g, err := geojson.Decode(data)
	if err != nil {
		return nil, true, fmt.Errorf("geo: property %q: %w", key, err)
	}
	p, ok := g.(geom.Polygon)
	if !ok {
		return nil, true, fmt.Errorf("geo: property %q: not a polygon", key)
	}
	return p, true, nil
}

// FloatProperty returns a numeric property. String values that parse as
// numbers are accepted; the source dataset stores some numeric columns
// (such as acres) as strings.
func (f *Feature) FloatProperty(key string) (float64, bool) {
	switch v := f.Properties[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// StringProperty returns a string property.
func (f *Feature) StringProperty(key string) (string, bool) {
	v, ok := f.Properties[key].(string)
	return v, ok
}

// GeometryType returns the GeoJSON type of the feature's geometry, or an
// empty string when the feature has none.
func (f *Feature) GeometryType() string {
	if len(f.Geometry) == 0 {
		return ""
	}
	var g Geometry
	if err := json.Unmarshal(f.Geometry, &g); err != nil {
		return ""
	}
	return g.Type
}
