// Package openapi describes a form schema as an OpenAPI 3 document so that
// backends can validate the payloads produced by the rendered forms. Each
// runnable becomes a component schema and a POST operation keyed by its path.
// Form-only details (input types, binding keys, option labels) travel in the
// x-formschema extension.
package openapi
