package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingKey is returned when a document object lacks a mandatory key.
// Present but empty values decode fine and are reported by validation.
var ErrMissingKey = errors.New("schema: missing required key")

var (
	inputKeys    = []string{"name", "label", "required"}
	runnableKeys = []string{"type", "path", "inputs"}
)

// inputWire is the flat document shape of an Input. Field order fixes the key
// order of exported documents.
type inputWire struct {
	Name            string        `json:"name"`
	Label           string        `json:"label"`
	Type            InputType     `json:"type"`
	Order           *int          `json:"order,omitempty"`
	Required        bool          `json:"required"`
	Description     string        `json:"description,omitempty"`
	DefaultValue    *DefaultValue `json:"defaultValue,omitempty"`
	Options         []Option      `json:"options,omitempty"`
	Min             *float64      `json:"min,omitempty"`
	Max             *float64      `json:"max,omitempty"`
	Step            *float64      `json:"step,omitempty"`
	Mark            string        `json:"mark,omitempty"`
	ActionType      string        `json:"actionType,omitempty"`
	OutputKey       string        `json:"outputKey,omitempty"`
	InitialInputKey string        `json:"initialInputKey,omitempty"`
}

type runnableWire struct {
	Type   RunnableType  `json:"type"`
	Path   string        `json:"path"`
	Inputs []Input       `json:"inputs"`
	Output *OutputConfig `json:"output,omitempty"`
}

type schemaWire struct {
	Runnables []Runnable `json:"runnables"`
}

// MarshalJSON flattens the input and its field case into one object.
func (in Input) MarshalJSON() ([]byte, error) {
	wire := inputWire{
		Name:         in.Name,
		Label:        in.Label,
		Type:         in.Type(),
		Order:        in.Order,
		Required:     in.Required,
		Description:  in.Description,
		DefaultValue: in.Default,
	}
	switch field := in.Field.(type) {
	case Dropdown:
		wire.Options = field.Options
	case Slider:
		wire.Min = field.Min
		wire.Max = field.Max
		wire.Step = field.Step
		wire.Mark = field.Mark
	case Action:
		wire.ActionType = field.ActionType
	case Output:
		wire.OutputKey = field.OutputKey
	case InitialInput:
		wire.InitialInputKey = field.InitialInputKey
	}
	return json.Marshal(wire)
}

// UnmarshalJSON reads the flat input object and keeps only the fields that
// belong to the declared type.
func (in *Input) UnmarshalJSON(data []byte) error {
	var wire inputWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("schema: decode input: %w", err)
	}
	if err := requireKeys(data, "input", inputKeys); err != nil {
		return err
	}
	*in = wire.input()
	return nil
}

func (w inputWire) input() Input {
	in := Input{
		Name:        w.Name,
		Label:       w.Label,
		Required:    w.Required,
		Order:       w.Order,
		Description: w.Description,
		Default:     w.DefaultValue,
	}
	if w.Type == "" {
		return in
	}
	switch w.Type {
	case InputTypeDropdown:
		in.Field = Dropdown{Options: w.Options}
	case InputTypeSlider:
		in.Field = Slider{Min: w.Min, Max: w.Max, Step: w.Step, Mark: w.Mark}
	case InputTypeAction:
		in.Field = Action{ActionType: w.ActionType}
	case InputTypeOutput:
		in.Field = Output{OutputKey: w.OutputKey}
	case InputTypeInitialInput:
		in.Field = InitialInput{InitialInputKey: w.InitialInputKey}
	default:
		in.Field = NewField(w.Type)
	}
	return in
}

// MarshalJSON always emits inputs as an array.
func (r Runnable) MarshalJSON() ([]byte, error) {
	inputs := r.Inputs
	if inputs == nil {
		inputs = []Input{}
	}
	return json.Marshal(runnableWire{
		Type:   r.Type,
		Path:   r.Path,
		Inputs: inputs,
		Output: r.Output,
	})
}

// UnmarshalJSON decodes a runnable object.
func (r *Runnable) UnmarshalJSON(data []byte) error {
	var wire runnableWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("schema: decode runnable: %w", err)
	}
	if err := requireKeys(data, "runnable", runnableKeys); err != nil {
		return err
	}
	*r = Runnable{
		Type:   wire.Type,
		Path:   wire.Path,
		Inputs: wire.Inputs,
		Output: wire.Output,
	}
	if r.Inputs == nil {
		r.Inputs = []Input{}
	}
	return nil
}

// MarshalJSON always emits runnables as an array.
func (s Schema) MarshalJSON() ([]byte, error) {
	runnables := s.Runnables
	if runnables == nil {
		runnables = []Runnable{}
	}
	return json.Marshal(schemaWire{Runnables: runnables})
}

// UnmarshalJSON decodes a schema document.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var wire schemaWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Runnables = wire.Runnables
	if s.Runnables == nil {
		s.Runnables = []Runnable{}
	}
	return nil
}

// requireKeys checks that the object in data carries every key with a non-null
// value. The input type is not listed: an absent type decodes to an input
// without a field and is reported by validation.
func requireKeys(data []byte, object string, keys []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("schema: decode %s: %w", object, err)
	}
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%w: %s %q", ErrMissingKey, object, key)
		}
	}
	return nil
}
