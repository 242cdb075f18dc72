package codec

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// ExportYAML encodes s as block-style YAML using the same key order as the
// JSON export.
func ExportYAML(s schema.Schema) ([]byte, error) {
	data, err := Export(s)
	if err != nil {
		return nil, err
	}

	// JSON is valid YAML, so decoding it into a node keeps the key order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	clearStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportYAML parses YAML text into a candidate schema with the same error
// contract as Import.
func ImportYAML(data []byte) (schema.Schema, error) {
	meta := map[string]any{"format": string(FormatYAML)}

	var probe any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return schema.Schema{}, wrapError(ErrParse, err, meta)
	}

	raw, err := json.Marshal(probe)
	if err != nil {
		return schema.Schema{}, wrapError(ErrDecode, err, meta)
	}
	return decodeDocument(probe, raw, meta)
}

func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}
