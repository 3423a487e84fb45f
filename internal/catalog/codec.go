package catalog

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// IsGzip reports whether a catalog path names a gzipped file.
func IsGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// Decode parses a YAML catalog, gunzipping it first when compressed is set.
// Sections absent from the file are taken from the built-in catalog.
func Decode(r io.Reader, compressed bool) (*Catalog, error) {
	if compressed {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c.withDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Encode writes c as YAML, gzipped when compressed is set.
func Encode(w io.Writer, c *Catalog, compressed bool) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if !compressed {
		_, err = w.Write(data)
		return err
	}

	gzipWriter := gzip.NewWriter(w)
	if _, err := gzipWriter.Write(data); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return gzipWriter.Close()
}
