package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromName picks a format from a file name or object key.
func FormatFromName(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FormatFromContentType picks a format from an HTTP Content-Type header,
// falling back to def when the header is not conclusive.
func FormatFromContentType(contentType string, def Format) Format {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "yaml"):
		return FormatYAML
	case strings.Contains(ct, "json"):
		return FormatJSON
	default:
		return def
	}
}

// Decode parses a catalog document.
func Decode(r io.Reader, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatYAML:
		// An empty document decodes to io.EOF, the same as an empty JSON body.
		if err := yaml.NewDecoder(r).Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("decode json catalog: %w", err)
		}
	}
	return c.normalize(), nil
}
