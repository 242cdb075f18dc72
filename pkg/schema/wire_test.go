package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInputUnmarshal_SelectsFieldCase(t *testing.T) {
	raw := `{
  "runnables": [
    {
      "type": "initial",
      "path": "r1",
      "inputs": [
        {"name": "pick", "label": "Pick", "type": "dropdown", "required": true, "options": [{"label": "A", "value": "a"}], "min": 3},
        {"name": "amount", "label": "Amount", "type": "slider", "required": false, "min": 0, "max": 10, "step": 0.5, "mark": "units"},
        {"name": "go", "label": "Go", "type": "action", "required": false, "actionType": "submit", "outputKey": "ignored"},
        {"name": "prev", "label": "Prev", "type": "output", "required": false, "outputKey": "result"},
        {"name": "seed", "label": "Seed", "type": "initialInput", "required": false, "initialInputKey": "prompt"},
        {"name": "notes", "label": "Notes", "type": "textarea", "required": false, "defaultValue": "hello", "order": 2},
        {"name": "flag", "label": "Flag", "type": "toggle", "required": false, "defaultValue": true},
        {"name": "odd", "label": "Odd", "type": "checkbox", "required": false},
        {"name": "bare", "label": "Bare", "required": false}
      ],
      "output": {"dataTitle": "Result"}
    }
  ]
}`

	var got Schema
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Schema{Runnables: []Runnable{{
		Type: RunnableTypeInitial,
		Path: "r1",
		Inputs: []Input{
			{Name: "pick", Label: "Pick", Required: true, Field: Dropdown{Options: []Option{{Label: "A", Value: "a"}}}},
			{Name: "amount", Label: "Amount", Field: Slider{Min: FloatPtr(0), Max: FloatPtr(10), Step: FloatPtr(0.5), Mark: "units"}},
			{Name: "go", Label: "Go", Field: Action{ActionType: "submit"}},
			{Name: "prev", Label: "Prev", Field: Output{OutputKey: "result"}},
			{Name: "seed", Label: "Seed", Field: InitialInput{InitialInputKey: "prompt"}},
			{Name: "notes", Label: "Notes", Order: IntPtr(2), Default: ptr(StringDefault("hello")), Field: Textarea{}},
			{Name: "flag", Label: "Flag", Default: ptr(BoolDefault(true)), Field: Toggle{}},
			{Name: "odd", Label: "Odd", Field: Unknown{Tag: "checkbox"}},
			{Name: "bare", Label: "Bare"},
		},
		Output: &OutputConfig{DataTitle: "Result"},
	}}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestInputUnmarshal_RejectsWrongValueKinds(t *testing.T) {
	cases := map[string]string{
		"string min":     `{"name":"a","label":"A","type":"slider","required":false,"min":"1"}`,
		"fraction order": `{"name":"a","label":"A","type":"textarea","required":false,"order":1.5}`,
		"object default": `{"name":"a","label":"A","type":"textarea","required":false,"defaultValue":{"x":1}}`,
		"number name":    `{"name":1,"label":"A","type":"textarea","required":false}`,
	}
	for name, raw := range cases {
		var in Input
		if err := json.Unmarshal([]byte(raw), &in); err == nil {
			t.Fatalf("%s: expected decode error", name)
		}
	}
}

func TestSchemaMarshal_StableKeyOrder(t *testing.T) {
	s := Schema{Runnables: []Runnable{{
		Type: RunnableTypeSecondary,
		Path: "r1",
		Inputs: []Input{{
			Name:     "amount",
			Label:    "Amount",
			Required: true,
			Order:    IntPtr(1),
			Default:  ptr(NumberDefault(4)),
			Field:    Slider{Min: FloatPtr(0), Max: FloatPtr(10), Step: FloatPtr(1)},
		}},
	}}}

	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"runnables":[{"type":"secondary","path":"r1","inputs":[{"name":"amount","label":"Amount","type":"slider","order":1,"required":true,"defaultValue":4,"min":0,"max":10,"step":1}]}]}`
	if string(got) != want {
		t.Fatalf("unexpected encoding:\nwant %s\ngot  %s", want, got)
	}
}

func TestSchemaMarshal_EmptyCollectionsAreArrays(t *testing.T) {
	got, err := json.Marshal(Schema{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `{"runnables":[]}` {
		t.Fatalf("unexpected encoding %s", got)
	}

	got, err = json.Marshal(Runnable{Type: RunnableTypeInitial, Path: "r"})
	if err != nil {
		t.Fatalf("marshal runnable: %v", err)
	}
	if string(got) != `{"type":"initial","path":"r","inputs":[]}` {
		t.Fatalf("unexpected runnable encoding %s", got)
	}
}

func TestDefaultValue_OptionsRoundTrip(t *testing.T) {
	def := OptionsDefault(Option{Label: "A", Value: "a"}, Option{Label: "B", Value: "b"})
	data, err := json.Marshal(def)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got DefaultValue
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(def) {
		t.Fatalf("expected %v, got %v", def.Value(), got.Value())
	}
	if got.Kind() != DefaultKindOptions {
		t.Fatalf("unexpected kind %q", got.Kind())
	}
}

func TestDefaultValue_EmptyOptionsEncodeAsList(t *testing.T) {
	empty := OptionsDefault()
	in := Input{
		Name:    "pick",
		Label:   "Pick",
		Default: &empty,
		Field:   Dropdown{Options: []Option{{Label: "A", Value: "a"}}},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"pick","label":"Pick","type":"dropdown","required":false,"defaultValue":[],"options":[{"label":"A","value":"a"}]}`
	if string(data) != want {
		t.Fatalf("unexpected encoding:\nwant %s\ngot  %s", want, data)
	}

	var got Input
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
	if got.Default == nil || got.Default.Kind() != DefaultKindOptions {
		t.Fatalf("expected an options default, got %+v", got.Default)
	}
}

func TestUnmarshal_RejectsMissingKeys(t *testing.T) {
	inputs := map[string]string{
		"no required":   `{"name":"a","label":"A","type":"toggle"}`,
		"null required": `{"name":"a","label":"A","type":"toggle","required":null}`,
		"no name":       `{"label":"A","type":"toggle","required":false}`,
		"no label":      `{"name":"a","type":"toggle","required":false}`,
	}
	for name, raw := range inputs {
		var in Input
		err := json.Unmarshal([]byte(raw), &in)
		if !errors.Is(err, ErrMissingKey) {
			t.Fatalf("%s: expected ErrMissingKey, got %v", name, err)
		}
	}

	runnables := map[string]string{
		"no type":   `{"path":"r","inputs":[]}`,
		"no path":   `{"type":"initial","inputs":[]}`,
		"no inputs": `{"type":"initial","path":"r"}`,
	}
	for name, raw := range runnables {
		var r Runnable
		err := json.Unmarshal([]byte(raw), &r)
		if !errors.Is(err, ErrMissingKey) {
			t.Fatalf("%s: expected ErrMissingKey, got %v", name, err)
		}
	}

	doc := `{"runnables":[{"type":"initial","path":"r","inputs":[{"name":"a","label":"A","type":"toggle"}]}]}`
	var s Schema
	if err := json.Unmarshal([]byte(doc), &s); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected nested ErrMissingKey, got %v", err)
	}
}

func TestUnmarshal_EmptyValuesAreNotMissing(t *testing.T) {
	var in Input
	if err := json.Unmarshal([]byte(`{"name":"","label":"","type":"toggle","required":false}`), &in); err != nil {
		t.Fatalf("unmarshal input: %v", err)
	}
	var r Runnable
	if err := json.Unmarshal([]byte(`{"type":"","path":"","inputs":[]}`), &r); err != nil {
		t.Fatalf("unmarshal runnable: %v", err)
	}
}
