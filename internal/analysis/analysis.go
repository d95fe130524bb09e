package analysis

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/yz3440/nyc-park-study/internal/config"
	"github.com/yz3440/nyc-park-study/internal/geo"
	"github.com/yz3440/nyc-park-study/internal/geometry"
	"github.com/yz3440/nyc-park-study/internal/projection"
)

// Analyzer runs the three shape analyses for individual features.
type Analyzer struct {
	// Proj supplies the geodetic/planar transform used by every analyzer.
	Proj *projection.Projector

	// BoundingCircle is the strategy for the Reock denominator, chosen
	// once here rather than per call.
	BoundingCircle geometry.BoundingCircleFunc

	// HullKey and AreaKey name the input properties consumed.
	HullKey string
	AreaKey string
}

// New returns an analyzer with the exact minimum bounding circle and the
// default property keys.
func New(proj *projection.Projector) *Analyzer {
	return &Analyzer{
		Proj:           proj,
		BoundingCircle: geometry.MinimumBoundingCircle,
		HullKey:        config.DefaultHullProperty,
		AreaKey:        config.DefaultAreaProperty,
	}
}

// AnalyzeFeature attaches the three analysis records to the feature's
// properties. A missing hull or a failed projection nulls all three
// records; partial failures null only the affected record. The returned
// error describes what went wrong but the feature is always left in a
// consistent, serializable state.
func (a *Analyzer) AnalyzeFeature(f *geo.Feature) error {
	if f.Properties == nil {
		f.Properties = make(map[string]interface{})
	}

	hull, present, err := f.PolygonProperty(a.HullKey)
	if !present {
		a.attachNull(f)
		return nil
	}
	if err != nil {
		a.attachNull(f)
		return fmt.Errorf("analysis: decoding hull property: %w", err)
	}

	projected, err := a.Proj.Forward(hull)
	if err != nil {
		a.attachNull(f)
		return err
	}

	f.Properties[CircleKey] = a.AnalyzeCircle(projected)

	var originalArea *float64
	if v, ok := f.FloatProperty(a.AreaKey); ok {
		originalArea = &v
	}
	rect, rectErr := a.AnalyzeRectangularity(projected, originalArea)
	f.Properties[RectangularityKey] = rect

	tri, triErr := a.AnalyzeTriangularity(projected)
	f.Properties[TriangularityKey] = tri

	if rectErr != nil {
		return rectErr
	}
	return triErr
}

func (a *Analyzer) attachNull(f *geo.Feature) {
	f.Properties[CircleKey] = nil
	f.Properties[RectangularityKey] = nil
	f.Properties[TriangularityKey] = nil
}

// Run analyzes every feature of the collection, at most concurrency
// features in flight at once (one per CPU when zero). Features are
// mutated in place, so input order is preserved and each feature's
// records are written exactly once. Per-feature failures are logged and
// never abort the batch.
func (a *Analyzer) Run(fc *geo.FeatureCollection, concurrency int) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	log.Info().
		Int("features", len(fc.Features)).
		Int("concurrency", concurrency).
		Msg("Starting hull shape analysis")

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i := range fc.Features {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := a.AnalyzeFeature(&fc.Features[idx]); err != nil {
				log.Warn().
					Err(err).
					Int("feature", idx).
					Msg("Analysis incomplete for feature")
			}
		}(i)
	}
	wg.Wait()

	log.Info().Int("features", len(fc.Features)).Msg("Hull shape analysis finished")
}
