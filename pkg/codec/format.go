package codec

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", wrapError(ErrUnsupportedFormat, nil, map[string]any{"format": name})
	}
}

// FormatForPath picks a format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode exports s in the given format.
func Encode(s schema.Schema, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return Export(s)
	case FormatYAML:
		return ExportYAML(s)
	default:
		return nil, wrapError(ErrUnsupportedFormat, nil, map[string]any{"format": string(format)})
	}
}

// Decode imports data in the given format.
func Decode(data []byte, format Format) (schema.Schema, error) {
	switch format {
	case FormatJSON, "":
		return Import(data)
	case FormatYAML:
		return ImportYAML(data)
	default:
		return schema.Schema{}, wrapError(ErrUnsupportedFormat, nil, map[string]any{"format": string(format)})
	}
}
