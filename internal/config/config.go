// Package config handles configuration loading and shared defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used when the configuration file omits a value.
const (
	// DefaultProjection is the planar CRS used for metric measurements,
	// UTM zone 18N (EPSG:32618), which covers the New York City extent.
	DefaultProjection = "+proj=utm +zone=18 +datum=WGS84 +units=m +no_defs"

	// DefaultHullProperty is the feature property under which the upstream
	// hull step stores the hull polygon to analyze.
	DefaultHullProperty = "concave_hull_polygon"

	// DefaultAreaProperty is the feature property holding the un-simplified
	// source geometry's area, produced by the augmentation step.
	DefaultAreaProperty = "area_sqm"
)

// DefaultTypecategoryWhitelist lists the park type categories kept by the
// dataset filter. Lots, strips, malls, parkways and similar administrative
// categories are excluded.
var DefaultTypecategoryWhitelist = []string{
	"Triangle/Plaza",
	"Garden",
	"Neighborhood Park",
	"Jointly Operated Playground",
	"Playground",
	"Community Park",
	"Nature Area",
	"Recreational Field/Courts",
	"Waterfront Facility",
	"Flagship Park",
	"Managed Sites",
	"Historic House Park",
	"Cemetery",
}

// Config represents the root configuration file structure.
type Config struct {
	// Projection is a proj4 string for the planar metric CRS.
	Projection string `yaml:"projection,omitempty"`

	// HullProperty and AreaProperty name the input feature properties
	// consumed by the analyzers.
	HullProperty string `yaml:"hull_property,omitempty"`
	AreaProperty string `yaml:"area_property,omitempty"`

	// TypecategoryWhitelist overrides the default dataset filter.
	TypecategoryWhitelist []string `yaml:"typecategory_whitelist,omitempty"`

	// ApproxBoundingCircle selects the approximate bounding-circle
	// strategy instead of the exact minimum enclosing circle.
	ApproxBoundingCircle bool `yaml:"approx_bounding_circle,omitempty"`

	// Concurrency caps the number of features analyzed in parallel.
	// Zero means one worker per CPU.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Projection == "" {
		c.Projection = DefaultProjection
	}
	if c.HullProperty == "" {
		c.HullProperty = DefaultHullProperty
	}
	if c.AreaProperty == "" {
		c.AreaProperty = DefaultAreaProperty
	}
	if len(c.TypecategoryWhitelist) == 0 {
		c.TypecategoryWhitelist = DefaultTypecategoryWhitelist
	}
}
