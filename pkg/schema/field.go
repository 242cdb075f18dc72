package schema

// FieldSpec is the type-specific part of an Input. The set of implementations
// is closed: one case per InputType plus Unknown for tags read from documents
// that fall outside the enum.
type FieldSpec interface {
	// Type reports the input type tag for the case.
	Type() InputType
	// Complete reports whether the case carries every field its type requires.
	Complete() bool

	clone() FieldSpec
}

// Dropdown offers a fixed list of options.
type Dropdown struct {
	Options []Option
}

func (Dropdown) Type() InputType { return InputTypeDropdown }

// Complete requires at least one option.
func (d Dropdown) Complete() bool { return len(d.Options) > 0 }

func (d Dropdown) clone() FieldSpec {
	return Dropdown{Options: cloneOptions(d.Options)}
}

// Slider is a numeric range input.
type Slider struct {
	Min  *float64
	Max  *float64
	Step *float64
	Mark string
}

func (Slider) Type() InputType { return InputTypeSlider }

// Complete requires min, max and step.
func (s Slider) Complete() bool {
	return s.Min != nil && s.Max != nil && s.Step != nil
}

func (s Slider) clone() FieldSpec {
	return Slider{
		Min:  cloneFloat(s.Min),
		Max:  cloneFloat(s.Max),
		Step: cloneFloat(s.Step),
		Mark: s.Mark,
	}
}

// Textarea is a free-text input.
type Textarea struct{}

func (Textarea) Type() InputType    { return InputTypeTextarea }
func (Textarea) Complete() bool     { return true }
func (t Textarea) clone() FieldSpec { return t }

// Toggle is a boolean switch.
type Toggle struct{}

func (Toggle) Type() InputType    { return InputTypeToggle }
func (Toggle) Complete() bool     { return true }
func (t Toggle) clone() FieldSpec { return t }

// Action triggers a named action.
type Action struct {
	ActionType string
}

func (Action) Type() InputType    { return InputTypeAction }
func (a Action) Complete() bool   { return a.ActionType != "" }
func (a Action) clone() FieldSpec { return a }

// Output binds to a key of a previous runnable's output.
type Output struct {
	OutputKey string
}

func (Output) Type() InputType    { return InputTypeOutput }
func (o Output) Complete() bool   { return o.OutputKey != "" }
func (o Output) clone() FieldSpec { return o }

// InitialInput binds to a key of the initial runnable's input.
type InitialInput struct {
	InitialInputKey string
}

func (InitialInput) Type() InputType    { return InputTypeInitialInput }
func (i InitialInput) Complete() bool   { return i.InitialInputKey != "" }
func (i InitialInput) clone() FieldSpec { return i }

// Unknown preserves a type tag outside the supported set. It never counts as
// complete; the validation engine reports the tag as a structural issue.
type Unknown struct {
	Tag InputType
}

func (u Unknown) Type() InputType  { return u.Tag }
func (Unknown) Complete() bool     { return false }
func (u Unknown) clone() FieldSpec { return u }

// NewField returns the zero value case for t, or Unknown when t is not a
// supported type.
func NewField(t InputType) FieldSpec {
	switch t {
	case InputTypeDropdown:
		return Dropdown{}
	case InputTypeSlider:
		return Slider{}
	case InputTypeTextarea:
		return Textarea{}
	case InputTypeToggle:
		return Toggle{}
	case InputTypeAction:
		return Action{}
	case InputTypeOutput:
		return Output{}
	case InputTypeInitialInput:
		return InitialInput{}
	default:
		return Unknown{Tag: t}
	}
}

func cloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	return append([]Option(nil), options...)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
