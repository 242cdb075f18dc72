package schema

// InputType is the closed set of input kinds a runnable can declare.
type InputType string

const (
	InputTypeDropdown     InputType = "dropdown"
	InputTypeSlider       InputType = "slider"
	InputTypeTextarea     InputType = "textarea"
	InputTypeToggle       InputType = "toggle"
	InputTypeAction       InputType = "action"
	InputTypeOutput       InputType = "output"
	InputTypeInitialInput InputType = "initialInput"
)

// InputTypes lists every supported input type in declaration order.
var InputTypes = []InputType{
	InputTypeDropdown,
	InputTypeSlider,
	InputTypeTextarea,
	InputTypeToggle,
	InputTypeAction,
	InputTypeOutput,
	InputTypeInitialInput,
}

// Valid reports whether t belongs to the closed input type set.
func (t InputType) Valid() bool {
	for _, candidate := range InputTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// RunnableType distinguishes the entry runnable from follow-up runnables.
type RunnableType string

const (
	RunnableTypeInitial   RunnableType = "initial"
	RunnableTypeSecondary RunnableType = "secondary"
)

// RunnableTypes lists the supported runnable types.
var RunnableTypes = []RunnableType{RunnableTypeInitial, RunnableTypeSecondary}

// Valid reports whether t is a known runnable type.
func (t RunnableType) Valid() bool {
	return t == RunnableTypeInitial || t == RunnableTypeSecondary
}

// Option is a label/value pair offered by dropdown inputs.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Input models a single form field. Name must be unique inside its runnable;
// the validation engine enforces that, storage does not.
type Input struct {
	Name        string
	Label       string
	Required    bool
	Order       *int
	Description string
	Default     *DefaultValue
	// Field carries the type tag and the fields specific to it.
	Field FieldSpec
}

// Type returns the input type derived from Field, or "" when Field is nil.
func (in Input) Type() InputType {
	if in.Field == nil {
		return ""
	}
	return in.Field.Type()
}

// Clone returns a deep copy of the input.
func (in Input) Clone() Input {
	out := in
	if in.Order != nil {
		order := *in.Order
		out.Order = &order
	}
	if in.Default != nil {
		def := in.Default.clone()
		out.Default = &def
	}
	if in.Field != nil {
		out.Field = in.Field.clone()
	}
	return out
}

// OutputConfig describes how a runnable presents its result.
type OutputConfig struct {
	DataTitle string `json:"dataTitle,omitempty" yaml:"dataTitle,omitempty"`
	Tip       string `json:"tip,omitempty" yaml:"tip,omitempty"`
}

// Runnable is a named group of inputs. Path must be unique across a schema.
type Runnable struct {
	Type   RunnableType
	Path   string
	Inputs []Input
	Output *OutputConfig
}

// Clone returns a deep copy of the runnable.
func (r Runnable) Clone() Runnable {
	out := r
	if r.Inputs != nil {
		out.Inputs = make([]Input, len(r.Inputs))
		for i, in := range r.Inputs {
			out.Inputs[i] = in.Clone()
		}
	}
	if r.Output != nil {
		output := *r.Output
		out.Output = &output
	}
	return out
}

// Schema is the root aggregate: the ordered runnables of a form.
type Schema struct {
	Runnables []Runnable
}

// New returns the empty schema.
func New() Schema {
	return Schema{Runnables: []Runnable{}}
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	out := Schema{Runnables: make([]Runnable, len(s.Runnables))}
	for i, r := range s.Runnables {
		out.Runnables[i] = r.Clone()
	}
	return out
}

// IntPtr is a small helper for populating optional order values.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr is a small helper for populating optional slider bounds.
func FloatPtr(v float64) *float64 {
	return &v
}
