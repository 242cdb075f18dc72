// Package normalize tidies user-entered schema text before validation.
// Identifiers (paths, names, binding keys) are trimmed; display text (labels,
// descriptions, marks, option labels, output hints) is trimmed and stripped of
// markup. Structure is never changed: runnable and input counts, order and
// type cases are preserved, so a normalized schema validates the same way
// unless whitespace or markup alone made an identifier look non-empty.
package normalize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formschema/pkg/schema"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Schema returns a normalized copy of s.
func Schema(s schema.Schema) schema.Schema {
	out := s.Clone()
	for i := range out.Runnables {
		out.Runnables[i] = Runnable(out.Runnables[i])
	}
	return out
}

// Runnable returns a normalized copy of r.
func Runnable(r schema.Runnable) schema.Runnable {
	out := r.Clone()
	out.Path = strings.TrimSpace(out.Path)
	out.Type = schema.RunnableType(strings.TrimSpace(string(out.Type)))
	for j := range out.Inputs {
		out.Inputs[j] = Input(out.Inputs[j])
	}
	if out.Output != nil {
		out.Output.DataTitle = Text(out.Output.DataTitle)
		out.Output.Tip = Text(out.Output.Tip)
	}
	return out
}

// Input returns a normalized copy of in.
func Input(in schema.Input) schema.Input {
	out := in.Clone()
	out.Name = strings.TrimSpace(out.Name)
	out.Label = Text(out.Label)
	out.Description = Text(out.Description)
	if out.Default != nil {
		if options, ok := out.Default.Options(); ok {
			def := schema.OptionsDefault(normalizeOptions(options)...)
			out.Default = &def
		}
	}

	switch field := out.Field.(type) {
	case schema.Dropdown:
		field.Options = normalizeOptions(field.Options)
		out.Field = field
	case schema.Slider:
		field.Mark = Text(field.Mark)
		out.Field = field
	case schema.Action:
		field.ActionType = strings.TrimSpace(field.ActionType)
		out.Field = field
	case schema.Output:
		field.OutputKey = strings.TrimSpace(field.OutputKey)
		out.Field = field
	case schema.InitialInput:
		field.InitialInputKey = strings.TrimSpace(field.InitialInputKey)
		out.Field = field
	}
	return out
}

// Text strips markup from display text and trims surrounding whitespace.
// Entities produced by the sanitizer are decoded back so plain text such as
// "Q&A" survives unchanged.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.ContainsAny(trimmed, "<>&") {
		return trimmed
	}
	cleaned := sanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func normalizeOptions(options []schema.Option) []schema.Option {
	if options == nil {
		return nil
	}
	out := make([]schema.Option, len(options))
	for i, opt := range options {
		out[i] = schema.Option{
			Label: Text(opt.Label),
			Value: strings.TrimSpace(opt.Value),
		}
	}
	return out
}

func sanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
