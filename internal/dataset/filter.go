package dataset

import (
	"github.com/yz3440/nyc-park-study/internal/geo"
)

// Filter splits the collection by typecategory. Features whose
// typecategory appears in the whitelist go to kept, everything else
// (including features without a typecategory) goes to removed. Input
// order is preserved in both outputs.
func Filter(fc *geo.FeatureCollection, whitelist []string) (kept, removed *geo.FeatureCollection) {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, v := range whitelist {
		allowed[v] = struct{}{}
	}

	kept = &geo.FeatureCollection{Type: "FeatureCollection"}
	removed = &geo.FeatureCollection{Type: "FeatureCollection"}

	for i := range fc.Features {
		f := fc.Features[i]
		tc, _ := f.StringProperty("typecategory")
		if _, ok := allowed[tc]; ok {
			kept.Features = append(kept.Features, f)
		} else {
			removed.Features = append(removed.Features, f)
		}
	}
	return kept, removed
}
