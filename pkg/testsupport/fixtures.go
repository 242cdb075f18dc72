// Package testsupport holds fixtures and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// SchemaOptions are the go-cmp options used to compare schema values. Empty
// and nil slices compare equal because documents cannot tell them apart.
var SchemaOptions = []cmp.Option{cmpopts.EquateEmpty()}

// SampleSchema returns a valid two-runnable schema touching every input type.
func SampleSchema() schema.Schema {
	formal := schema.Option{Label: "Formal", Value: "formal"}
	casual := schema.Option{Label: "Casual", Value: "casual"}
	defaultTone := schema.OptionsDefault(formal)
	defaultLength := schema.NumberDefault(50)
	defaultNotes := schema.StringDefault("Keep it short")
	defaultPublic := schema.BoolDefault(true)

	return schema.Schema{Runnables: []schema.Runnable{
		{
			Type: schema.RunnableTypeInitial,
			Path: "summarize",
			Inputs: []schema.Input{
				{
					Name:     "tone",
					Label:    "Tone",
					Required: true,
					Order:    schema.IntPtr(1),
					Default:  &defaultTone,
					Field:    schema.Dropdown{Options: []schema.Option{formal, casual}},
				},
				{
					Name:    "length",
					Label:   "Length",
					Order:   schema.IntPtr(2),
					Default: &defaultLength,
					Field: schema.Slider{
						Min:  schema.FloatPtr(0),
						Max:  schema.FloatPtr(100),
						Step: schema.FloatPtr(5),
						Mark: "words",
					},
				},
				{
					Name:        "notes",
					Label:       "Notes",
					Description: "Anything the summary should mention",
					Default:     &defaultNotes,
					Field:       schema.Textarea{},
				},
				{
					Name:    "public",
					Label:   "Public",
					Default: &defaultPublic,
					Field:   schema.Toggle{},
				},
			},
			Output: &schema.OutputConfig{DataTitle: "Summary", Tip: "Copy it"},
		},
		{
			Type: schema.RunnableTypeSecondary,
			Path: "refine",
			Inputs: []schema.Input{
				{Name: "previous", Label: "Previous summary", Required: true, Field: schema.Output{OutputKey: "summary"}},
				{Name: "topic", Label: "Topic", Field: schema.InitialInput{InitialInputKey: "notes"}},
				{Name: "rerun", Label: "Rerun", Field: schema.Action{ActionType: "regenerate"}},
			},
		},
	}}
}

// LoadSchemaFromPath decodes a JSON fixture into a schema without validating.
func LoadSchemaFromPath(path string) (schema.Schema, error) {
	if path == "" {
		return schema.Schema{}, errors.New("testsupport: schema path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("testsupport: read schema: %w", err)
	}
	var out schema.Schema
	if err := json.Unmarshal(data, &out); err != nil {
		return schema.Schema{}, fmt.Errorf("testsupport: unmarshal schema: %w", err)
	}
	return out, nil
}

// MustLoadSchema is LoadSchemaFromPath for tests.
func MustLoadSchema(t *testing.T, path string) schema.Schema {
	t.Helper()

	s, err := LoadSchemaFromPath(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return s
}

// CompareSchemas returns a diff string if the schemas differ.
func CompareSchemas(want, got schema.Schema) string {
	return cmp.Diff(want, got, SchemaOptions...)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
