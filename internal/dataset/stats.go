// Package dataset implements the preparation steps for the parks
// collection: summary statistics, typecategory filtering and basic
// geometric augmentation.
package dataset

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/yz3440/nyc-park-study/internal/geo"
)

// subcategoryLimit caps the subcategory table at the most common values.
const subcategoryLimit = 20

type countRow struct {
	value string
	count int
	acres float64
}

// WriteReport prints the distribution summary of the collection:
// typecategory and subcategory counts, per-borough counts with total
// acreage, and the geometry type breakdown.
func WriteReport(w io.Writer, fc *geo.FeatureCollection) error {
	fmt.Fprintf(w, "Total number of parks: %d\n", len(fc.Features))

	if err := writeCountTable(w, "TYPECATEGORY DISTRIBUTION", countValues(fc, "typecategory"), 0); err != nil {
		return err
	}
	fmt.Fprintf(w, "Missing typecategory values: %d\n", missingValues(fc, "typecategory"))

	if err := writeCountTable(w, "SUBCATEGORY DISTRIBUTION (top 20)", countValues(fc, "subcategory"), subcategoryLimit); err != nil {
		return err
	}
	fmt.Fprintf(w, "Missing subcategory values: %d\n", missingValues(fc, "subcategory"))

	if err := writeBoroughTable(w, fc); err != nil {
		return err
	}

	geomCounts := make(map[string]int)
	for i := range fc.Features {
		t := fc.Features[i].GeometryType()
		if t == "" {
			t = "(none)"
		}
		geomCounts[t]++
	}
	return writeCountTable(w, "GEOMETRY TYPE DISTRIBUTION", sortRows(geomCounts), 0)
}

func countValues(fc *geo.FeatureCollection, key string) []countRow {
	counts := make(map[string]int)
	for i := range fc.Features {
		if v, ok := fc.Features[i].StringProperty(key); ok && v != "" {
			counts[v]++
		}
	}
	return sortRows(counts)
}

func missingValues(fc *geo.FeatureCollection, key string) int {
	var n int
	for i := range fc.Features {
		if v, ok := fc.Features[i].StringProperty(key); !ok || v == "" {
			n++
		}
	}
	return n
}

// sortRows orders by descending count, then by value for stable output.
func sortRows(counts map[string]int) []countRow {
	rows := make([]countRow, 0, len(counts))
	for v, c := range counts {
		rows = append(rows, countRow{value: v, count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].value < rows[j].value
	})
	return rows
}

func writeCountTable(w io.Writer, title string, rows []countRow, limit int) error {
	unique := len(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.value, r.count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Unique values: %d\n", unique)
	return nil
}

func writeBoroughTable(w io.Writer, fc *geo.FeatureCollection) error {
	counts := make(map[string]int)
	acres := make(map[string]float64)
	for i := range fc.Features {
		f := &fc.Features[i]
		b, ok := f.StringProperty("borough")
		if !ok || b == "" {
			continue
		}
		counts[b]++
		// Acreage is stored as a string column in the source data.
		if a, ok := f.FloatProperty("acres"); ok {
			acres[b] += a
		}
	}

	rows := make([]countRow, 0, len(counts))
	for b, c := range counts {
		rows = append(rows, countRow{value: b, count: c, acres: acres[b]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].acres != rows[j].acres {
			return rows[i].acres > rows[j].acres
		}
		return rows[i].value < rows[j].value
	})

	fmt.Fprintf(w, "\nBOROUGH DISTRIBUTION\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%.2f acres\n", r.value, r.count, r.acres)
	}
	return tw.Flush()
}
