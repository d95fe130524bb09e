package dataset

import (
	"fmt"
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"

	"github.com/yz3440/nyc-park-study/internal/geo"
	"github.com/yz3440/nyc-park-study/internal/geometry"
	"github.com/yz3440/nyc-park-study/internal/projection"
)

// Augment attaches the basic geometric properties to every feature of
// the collection: metric area and perimeter, vertex and part counts,
// geodetic centroid, bounding box dimensions, convex hull measures and
// the per-part area breakdown. Measurements in meters are taken in the
// projector's planar CRS; the centroid and the stored convex hull keep
// the dataset's geodetic coordinates.
func Augment(fc *geo.FeatureCollection, pr *projection.Projector) error {
	for i := range fc.Features {
		if err := augmentFeature(&fc.Features[i], pr); err != nil {
			return fmt.Errorf("dataset: feature %d: %w", i, err)
		}
	}
	return nil
}

func augmentFeature(f *geo.Feature, pr *projection.Projector) error {
	if f.Properties == nil {
		f.Properties = make(map[string]interface{})
	}

	g, err := geo.DecodeGeometry(f.Geometry)
	if err != nil {
		return err
	}

	var geodetic, projected []geom.Polygon
	switch t := g.(type) {
	case geom.Polygon:
		geodetic = []geom.Polygon{t}
	case geom.MultiPolygon:
		geodetic = t
	default:
		return fmt.Errorf("unsupported geometry %T", g)
	}
	projected = make([]geom.Polygon, len(geodetic))
	for i, p := range geodetic {
		if projected[i], err = pr.Forward(p); err != nil {
			return err
		}
	}

	var area, perimeter float64
	var vertices int
	partAreas := make([]float64, len(projected))
	for i, p := range projected {
		partAreas[i] = p.Area()
		area += partAreas[i]
		perimeter += geometry.PolygonPerimeter(p)
		// Exterior ring only, including the closing coordinate.
		vertices += len(geodetic[i][0])
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(partAreas)))

	f.Properties["area_sqm"] = area
	f.Properties["perimeter_m"] = perimeter
	f.Properties["num_vertices"] = vertices
	f.Properties["num_polygons"] = len(geodetic)

	centroid := geom.MultiPolygon(geodetic).Centroid()
	f.Properties["centroid_lon"] = centroid.X
	f.Properties["centroid_lat"] = centroid.Y

	bounds := geom.MultiPolygon(projected).Bounds()
	width := bounds.Max.X - bounds.Min.X
	height := bounds.Max.Y - bounds.Min.Y
	f.Properties["bbox_width"] = width
	f.Properties["bbox_height"] = height
	f.Properties["aspect_ratio"] = ratioOrNil(width, height)

	if err := augmentConvexHull(f, geodetic, projected, area); err != nil {
		return err
	}

	f.Properties["polygon_areas_desc"] = partAreas
	largest, smallest := partAreas[0], partAreas[len(partAreas)-1]
	f.Properties["largest_polygon_area"] = largest
	f.Properties["smallest_polygon_area"] = smallest
	f.Properties["polygon_area_ratio"] = ratioOrNil(largest, smallest)

	return nil
}

func augmentConvexHull(f *geo.Feature, geodetic, projected []geom.Polygon, area float64) error {
	var planarPts, geodeticPts []geom.Point
	for i := range projected {
		planarPts = append(planarPts, geometry.PolygonVertices(projected[i])...)
		geodeticPts = append(geodeticPts, geometry.PolygonVertices(geodetic[i])...)
	}

	hull := geometry.ConvexHull(planarPts)
	hullArea := geom.Polygon{geometry.CloseRing(hull)}.Area()
	f.Properties["convex_hull_area"] = hullArea
	f.Properties["convexity_ratio"] = ratioOrNil(area, hullArea)

	geoHull := geometry.ConvexHull(geodeticPts)
	record, err := geojson.ToGeoJSON(geom.Polygon{geometry.CloseRing(geoHull)})
	if err != nil {
		return fmt.Errorf("encoding convex hull: %w", err)
	}
	f.Properties["convex_hull_polygon"] = record
	return nil
}

// ratioOrNil avoids storing infinities, which JSON cannot carry.
func ratioOrNil(num, den float64) interface{} {
	if den <= 0 {
		return nil
	}
	return num / den
}
