package geo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// ReadFile loads a feature collection from a GeoJSON file.
// An empty path reads from stdin.
func ReadFile(path string) (*FeatureCollection, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("geo: parsing feature collection: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("geo: expected FeatureCollection, got %q", fc.Type)
	}
	return &fc, nil
}

// WriteFile writes the feature collection as indented GeoJSON.
// An empty path writes to stdout; compact strips all whitespace.
func WriteFile(path string, fc *FeatureCollection, compact bool) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}

	if compact {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		var buf bytes.Buffer
		if err := m.Minify("application/json", &buf, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("geo: minifying output: %w", err)
		}
		data = buf.Bytes()
	}

	if path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0644)
}
