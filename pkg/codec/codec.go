// Package codec converts schemas to and from their document form. Export is
// deterministic; Import only checks syntax and shape, never the semantic
// rules, so callers must run the validation engine before committing an
// imported schema.
package codec

import (
	"encoding/json"
	stderrors "errors"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Download defaults for exported documents.
const (
	Filename = "form-schema.json"
	MIMEType = "application/json"
)

var (
	errNotObject        = stderrors.New("codec: document root must be an object")
	errMissingRunnables = stderrors.New("codec: document is missing the runnables list")
)

// Export encodes s as JSON with two-space indentation and a fixed key order.
func Export(s schema.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Import parses JSON text into a candidate schema. Syntax errors return an
// error matching IsParseError; values of the wrong kind return an error
// matching IsDecodeError.
func Import(data []byte) (schema.Schema, error) {
	meta := map[string]any{"format": string(FormatJSON)}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return schema.Schema{}, wrapError(ErrParse, err, meta)
	}
	return decodeDocument(probe, data, meta)
}

// decodeDocument checks the root shape of an already parsed document and
// decodes its JSON form into a schema.
func decodeDocument(probe any, raw []byte, meta map[string]any) (schema.Schema, error) {
	root, ok := probe.(map[string]any)
	if !ok {
		return schema.Schema{}, wrapError(ErrDecode, errNotObject, meta)
	}
	if runnables, ok := root["runnables"]; !ok || runnables == nil {
		return schema.Schema{}, wrapError(ErrDecode, errMissingRunnables, meta)
	}

	var out schema.Schema
	if err := json.Unmarshal(raw, &out); err != nil {
		return schema.Schema{}, wrapError(ErrDecode, err, meta)
	}
	return out, nil
}
