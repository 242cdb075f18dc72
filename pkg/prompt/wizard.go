// Package prompt asks the user for runnables and inputs in the terminal. The
// wizard only collects values; committing them (and therefore validating
// them) is left to the caller.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/validation"
)

// Wizard collects schema values through a Driver.
type Wizard struct {
	driver    Driver
	maxInputs int
}

// WizardOption configures a Wizard.
type WizardOption func(*Wizard)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) WizardOption {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithMaxInputs stops offering more inputs once limit is reached.
func WithMaxInputs(limit int) WizardOption {
	return func(w *Wizard) {
		if limit > 0 {
			w.maxInputs = limit
		}
	}
}

// NewWizard returns a wizard using the survey driver unless overridden.
func NewWizard(options ...WizardOption) *Wizard {
	w := &Wizard{maxInputs: validation.DefaultMaxInputs}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver(nil)
	}
	return w
}

// Runnable asks for a complete runnable: type, path, one or more inputs and
// an optional output section. Inputs are numbered 1..n in the order asked.
func (w *Wizard) Runnable(ctx context.Context) (schema.Runnable, error) {
	idx, err := w.choose(ctx, "Runnable type", runnableTypeNames(), 0)
	if err != nil {
		return schema.Runnable{}, err
	}
	path, err := w.driver.Input(ctx, InputConfig{
		Message:   "Path",
		Help:      "Unique identifier of the runnable",
		Validator: requireText(validation.MsgPathRequired),
	})
	if err != nil {
		return schema.Runnable{}, err
	}

	r := schema.Runnable{Type: schema.RunnableTypes[idx], Path: strings.TrimSpace(path)}
	for {
		if err := w.driver.Info(ctx, fmt.Sprintf("Input %d", len(r.Inputs)+1)); err != nil {
			return schema.Runnable{}, err
		}
		in, err := w.Input(ctx)
		if err != nil {
			return schema.Runnable{}, err
		}
		in.Order = schema.IntPtr(len(r.Inputs) + 1)
		r.Inputs = append(r.Inputs, in)

		if len(r.Inputs) >= w.maxInputs {
			break
		}
		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add another input?"})
		if err != nil {
			return schema.Runnable{}, err
		}
		if !more {
			break
		}
	}

	withOutput, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Configure the output section?"})
	if err != nil {
		return schema.Runnable{}, err
	}
	if withOutput {
		title, err := w.driver.Input(ctx, InputConfig{Message: "Output title"})
		if err != nil {
			return schema.Runnable{}, err
		}
		tip, err := w.driver.Input(ctx, InputConfig{Message: "Output tip"})
		if err != nil {
			return schema.Runnable{}, err
		}
		r.Output = &schema.OutputConfig{DataTitle: title, Tip: tip}
	}
	return r, nil
}

// Input asks for one input and the settings its type needs.
func (w *Wizard) Input(ctx context.Context) (schema.Input, error) {
	name, err := w.driver.Input(ctx, InputConfig{
		Message:   "Name",
		Validator: requireText(validation.MsgNameRequired),
	})
	if err != nil {
		return schema.Input{}, err
	}
	label, err := w.driver.Input(ctx, InputConfig{
		Message:   "Label",
		Default:   name,
		Validator: requireText(validation.MsgLabelRequired),
	})
	if err != nil {
		return schema.Input{}, err
	}
	idx, err := w.choose(ctx, "Input type", inputTypeNames(), 0)
	if err != nil {
		return schema.Input{}, err
	}
	required, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Required?"})
	if err != nil {
		return schema.Input{}, err
	}
	description, err := w.driver.Input(ctx, InputConfig{Message: "Description (optional)"})
	if err != nil {
		return schema.Input{}, err
	}

	in := schema.Input{
		Name:        strings.TrimSpace(name),
		Label:       label,
		Required:    required,
		Description: description,
	}
	if err := w.field(ctx, schema.InputTypes[idx], &in); err != nil {
		return schema.Input{}, err
	}
	return in, nil
}

func (w *Wizard) field(ctx context.Context, t schema.InputType, in *schema.Input) error {
	switch t {
	case schema.InputTypeDropdown:
		options, err := w.options(ctx)
		if err != nil {
			return err
		}
		in.Field = schema.Dropdown{Options: options}
	case schema.InputTypeSlider:
		slider := schema.Slider{}
		for _, bound := range []struct {
			message string
			target  **float64
		}{
			{"Minimum", &slider.Min},
			{"Maximum", &slider.Max},
			{"Step", &slider.Step},
		} {
			value, err := w.number(ctx, bound.message)
			if err != nil {
				return err
			}
			*bound.target = schema.FloatPtr(value)
		}
		mark, err := w.driver.Input(ctx, InputConfig{Message: "Unit mark (optional)"})
		if err != nil {
			return err
		}
		slider.Mark = mark
		in.Field = slider
	case schema.InputTypeTextarea:
		text, err := w.driver.TextArea(ctx, TextAreaConfig{Message: "Default text (optional)"})
		if err != nil {
			return err
		}
		if text != "" {
			def := schema.StringDefault(text)
			in.Default = &def
		}
		in.Field = schema.Textarea{}
	case schema.InputTypeToggle:
		on, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "On by default?"})
		if err != nil {
			return err
		}
		def := schema.BoolDefault(on)
		in.Default = &def
		in.Field = schema.Toggle{}
	case schema.InputTypeAction:
		key, err := w.requiredKey(ctx, "Action type")
		if err != nil {
			return err
		}
		in.Field = schema.Action{ActionType: key}
	case schema.InputTypeOutput:
		key, err := w.requiredKey(ctx, "Output key")
		if err != nil {
			return err
		}
		in.Field = schema.Output{OutputKey: key}
	case schema.InputTypeInitialInput:
		key, err := w.requiredKey(ctx, "Initial input key")
		if err != nil {
			return err
		}
		in.Field = schema.InitialInput{InitialInputKey: key}
	default:
		return fmt.Errorf("%w: input type %q", ErrInvalidAnswer, t)
	}
	return nil
}

func (w *Wizard) options(ctx context.Context) ([]schema.Option, error) {
	var options []schema.Option
	for {
		label, err := w.driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("Option %d label", len(options)+1),
			Validator: requireText("Option label is required"),
		})
		if err != nil {
			return nil, err
		}
		value, err := w.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Option %d value", len(options)+1),
			Default: slug(label),
		})
		if err != nil {
			return nil, err
		}
		if value == "" {
			value = slug(label)
		}
		options = append(options, schema.Option{Label: label, Value: value})

		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add another option?"})
		if err != nil {
			return nil, err
		}
		if !more {
			return options, nil
		}
	}
}

func (w *Wizard) number(ctx context.Context, message string) (float64, error) {
	raw, err := w.driver.Input(ctx, InputConfig{Message: message, Validator: parseNumber})
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidAnswer, message, err)
	}
	return value, nil
}

func (w *Wizard) requiredKey(ctx context.Context, message string) (string, error) {
	key, err := w.driver.Input(ctx, InputConfig{
		Message:   message,
		Validator: requireText(message + " is required"),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

func (w *Wizard) choose(ctx context.Context, message string, options []string, def int) (int, error) {
	idx, err := w.driver.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: def})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAnswer, message)
	}
	return idx, nil
}

func requireText(message string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(message)
		}
		return nil
	}
}

func parseNumber(value string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return errors.New("Enter a number")
	}
	return nil
}

func slug(label string) string {
	fields := strings.Fields(strings.ToLower(label))
	return strings.Join(fields, "-")
}

func runnableTypeNames() []string {
	out := make([]string, len(schema.RunnableTypes))
	for i, t := range schema.RunnableTypes {
		out[i] = string(t)
	}
	return out
}

func inputTypeNames() []string {
	out := make([]string, len(schema.InputTypes))
	for i, t := range schema.InputTypes {
		out[i] = string(t)
	}
	return out
}
