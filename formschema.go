// Package formschema is the top-level entry point for building form schemas:
// a list of runnables, each a named group of typed inputs. The subpackages
// hold the pieces (model, validation, history, codec); this package aliases
// the types most callers need and wires a ready-to-use editing session.
package formschema

import (
	"github.com/goliatone/go-formschema/pkg/builder"
	"github.com/goliatone/go-formschema/pkg/codec"
	"github.com/goliatone/go-formschema/pkg/normalize"
	"github.com/goliatone/go-formschema/pkg/openapi"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/validation"
)

// Schema aliases schema.Schema.
type Schema = schema.Schema

// Runnable aliases schema.Runnable.
type Runnable = schema.Runnable

// Input aliases schema.Input.
type Input = schema.Input

// Result aliases validation.Result.
type Result = validation.Result

// Session aliases builder.Session.
type Session = builder.Session

// NewSession returns an editing session. Candidates are normalized before
// validation unless options override the normalizer.
func NewSession(options ...builder.Option) *Session {
	defaults := []builder.Option{builder.WithNormalizer(normalize.Schema)}
	return builder.New(append(defaults, options...)...)
}

// ValidateSchema validates s with the default rules.
func ValidateSchema(s Schema) Result {
	return validation.ValidateSchema(s)
}

// ValidateRunnable validates a single runnable with the default rules.
func ValidateRunnable(r Runnable) Result {
	return validation.ValidateRunnable(r)
}

// Import decodes a JSON schema document without validating it.
func Import(data []byte) (Schema, error) {
	return codec.Import(data)
}

// Export encodes s as indented JSON.
func Export(s Schema) ([]byte, error) {
	return codec.Export(s)
}

// ExportOpenAPI encodes the OpenAPI description of s.
func ExportOpenAPI(s Schema, options ...openapi.Option) ([]byte, error) {
	return openapi.Export(s, options...)
}
