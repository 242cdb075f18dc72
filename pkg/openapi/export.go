package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formschema/pkg/schema"
)

var componentNameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Document builds the OpenAPI description of s. It does not validate s;
// callers export committed schemas.
func Document(s schema.Schema, options ...Option) (*openapi3.T, error) {
	opts := resolveOptions(options)

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:   opts.Title,
			Version: opts.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas, len(s.Runnables)),
		},
	}

	used := make(map[string]struct{}, len(s.Runnables))
	for i, r := range s.Runnables {
		name := componentName(r.Path, i, used)
		component := runnableSchema(r)
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", component)

		if !opts.Operations {
			continue
		}
		ref := &openapi3.SchemaRef{Ref: "#/components/schemas/" + name, Value: component}
		operation := &openapi3.Operation{
			OperationID: name,
			Summary:     r.Path,
			RequestBody: &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref),
			},
			Responses: openapi3.NewResponses(
				openapi3.WithName("200", openapi3.NewResponse().WithDescription("Runnable accepted")),
			),
		}
		operation.Extensions = map[string]any{ExtensionKey: map[string]any{"runnableType": string(r.Type)}}
		doc.Paths.Set("/"+name, &openapi3.PathItem{Post: operation})
	}
	return doc, nil
}

// Export renders the OpenAPI description of s as indented JSON.
func Export(s schema.Schema, options ...Option) ([]byte, error) {
	doc, err := Document(s, options...)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal document: %w", err)
	}
	return data, nil
}

// Load parses an exported document back with kin-openapi and validates it.
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

func runnableSchema(r schema.Runnable) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Title = r.Path

	ext := map[string]any{"runnableType": string(r.Type)}
	if r.Output != nil {
		ext["output"] = map[string]any{"dataTitle": r.Output.DataTitle, "tip": r.Output.Tip}
	}
	out.Extensions = map[string]any{ExtensionKey: ext}

	order := make([]string, 0, len(r.Inputs))
	for _, in := range r.Inputs {
		out.Properties[in.Name] = openapi3.NewSchemaRef("", inputSchema(in))
		order = append(order, in.Name)
		if in.Required {
			out.Required = append(out.Required, in.Name)
		}
	}
	ext["inputOrder"] = order
	return out
}

func inputSchema(in schema.Input) *openapi3.Schema {
	var out *openapi3.Schema
	ext := map[string]any{"type": string(in.Type())}
	if in.Order != nil {
		ext["order"] = *in.Order
	}

	switch field := in.Field.(type) {
	case schema.Dropdown:
		out = openapi3.NewStringSchema()
		labels := make(map[string]any, len(field.Options))
		for _, opt := range field.Options {
			out.Enum = append(out.Enum, opt.Value)
			labels[opt.Value] = opt.Label
		}
		ext["options"] = labels
		if value, ok := dropdownDefault(in.Default, field.Options); ok {
			out.Default = value
		}
	case schema.Slider:
		out = openapi3.NewFloat64Schema()
		out.Min = field.Min
		out.Max = field.Max
		if field.Step != nil && *field.Step > 0 {
			out.MultipleOf = field.Step
		}
		if field.Mark != "" {
			ext["mark"] = field.Mark
		}
		if value, ok := numberDefault(in.Default); ok {
			out.Default = value
		}
	case schema.Toggle:
		out = openapi3.NewBoolSchema()
		if in.Default != nil {
			if value, ok := in.Default.Bool(); ok {
				out.Default = value
			}
		}
	case schema.Textarea:
		out = openapi3.NewStringSchema()
		out.Default = textDefault(in.Default)
	case schema.Action:
		out = openapi3.NewStringSchema()
		ext["actionType"] = field.ActionType
	case schema.Output:
		out = openapi3.NewStringSchema()
		out.ReadOnly = true
		ext["outputKey"] = field.OutputKey
	case schema.InitialInput:
		out = openapi3.NewStringSchema()
		ext["initialInputKey"] = field.InitialInputKey
	default:
		out = &openapi3.Schema{}
	}

	out.Title = in.Label
	out.Description = in.Description
	out.Extensions = map[string]any{ExtensionKey: ext}
	return out
}

func dropdownDefault(def *schema.DefaultValue, options []schema.Option) (any, bool) {
	if def == nil {
		return nil, false
	}
	var candidate string
	if selected, ok := def.Options(); ok && len(selected) > 0 {
		candidate = selected[0].Value
	} else if text, ok := def.Text(); ok {
		candidate = text
	} else {
		return nil, false
	}
	for _, opt := range options {
		if opt.Value == candidate {
			return candidate, true
		}
	}
	return nil, false
}

func numberDefault(def *schema.DefaultValue) (any, bool) {
	if def == nil {
		return nil, false
	}
	value, ok := def.Number()
	return value, ok
}

func textDefault(def *schema.DefaultValue) any {
	if def == nil {
		return nil
	}
	if text, ok := def.Text(); ok {
		return text
	}
	return nil
}

func componentName(path string, index int, used map[string]struct{}) string {
	name := strings.Trim(componentNameUnsafe.ReplaceAllString(path, "_"), "_")
	if name == "" {
		name = "runnable_" + strconv.Itoa(index)
	}
	if _, taken := used[name]; taken {
		name = name + "_" + strconv.Itoa(index)
	}
	used[name] = struct{}{}
	return name
}
