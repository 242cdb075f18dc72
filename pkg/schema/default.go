package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultKind tags the shape held by a DefaultValue.
type DefaultKind string

const (
	DefaultKindString  DefaultKind = "string"
	DefaultKindNumber  DefaultKind = "number"
	DefaultKindBool    DefaultKind = "boolean"
	DefaultKindOptions DefaultKind = "options"
)

// DefaultValue is the pre-filled value of an input: a string, a number, a
// boolean or an ordered list of options. The zero value is not meaningful;
// use the constructors.
type DefaultValue struct {
	kind    DefaultKind
	str     string
	num     float64
	flag    bool
	options []Option
}

// StringDefault returns a string default.
func StringDefault(v string) DefaultValue {
	return DefaultValue{kind: DefaultKindString, str: v}
}

// NumberDefault returns a numeric default.
func NumberDefault(v float64) DefaultValue {
	return DefaultValue{kind: DefaultKindNumber, num: v}
}

// BoolDefault returns a boolean default.
func BoolDefault(v bool) DefaultValue {
	return DefaultValue{kind: DefaultKindBool, flag: v}
}

// OptionsDefault returns a default made of options, typically a preselection
// for dropdown inputs.
func OptionsDefault(options ...Option) DefaultValue {
	return DefaultValue{kind: DefaultKindOptions, options: optionList(options)}
}

// Kind reports which shape the value holds.
func (d DefaultValue) Kind() DefaultKind { return d.kind }

// Text returns the string payload and whether the value is a string.
func (d DefaultValue) Text() (string, bool) {
	return d.str, d.kind == DefaultKindString
}

// Number returns the numeric payload and whether the value is a number.
func (d DefaultValue) Number() (float64, bool) {
	return d.num, d.kind == DefaultKindNumber
}

// Bool returns the boolean payload and whether the value is a boolean.
func (d DefaultValue) Bool() (bool, bool) {
	return d.flag, d.kind == DefaultKindBool
}

// Options returns a copy of the options payload and whether the value holds
// options.
func (d DefaultValue) Options() ([]Option, bool) {
	return cloneOptions(d.options), d.kind == DefaultKindOptions
}

// Value returns the payload as a plain Go value (string, float64, bool or
// []Option), or nil for the zero DefaultValue.
func (d DefaultValue) Value() any {
	switch d.kind {
	case DefaultKindString:
		return d.str
	case DefaultKindNumber:
		return d.num
	case DefaultKindBool:
		return d.flag
	case DefaultKindOptions:
		return optionList(d.options)
	default:
		return nil
	}
}

// Equal reports whether both values hold the same shape and payload.
func (d DefaultValue) Equal(other DefaultValue) bool {
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case DefaultKindString:
		return d.str == other.str
	case DefaultKindNumber:
		return d.num == other.num
	case DefaultKindBool:
		return d.flag == other.flag
	case DefaultKindOptions:
		if len(d.options) != len(other.options) {
			return false
		}
		for i := range d.options {
			if d.options[i] != other.options[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (d DefaultValue) clone() DefaultValue {
	out := d
	if d.kind == DefaultKindOptions {
		out.options = optionList(d.options)
	}
	return out
}

// optionList copies options and never returns nil, so an empty selection
// still encodes as [].
func optionList(options []Option) []Option {
	return append([]Option{}, options...)
}

// MarshalJSON encodes the payload as the bare JSON value.
func (d DefaultValue) MarshalJSON() ([]byte, error) {
	value := d.Value()
	if value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(value)
}

var errDefaultShape = errors.New("schema: defaultValue must be a string, number, boolean or list of options")

// UnmarshalJSON decodes a string, number, boolean or option list.
func (d *DefaultValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errDefaultShape
	}
	switch trimmed[0] {
	case '"':
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*d = StringDefault(v)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*d = BoolDefault(v)
	case '[':
		var v []Option
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return fmt.Errorf("%w: %v", errDefaultShape, err)
		}
		if v == nil {
			v = []Option{}
		}
		*d = DefaultValue{kind: DefaultKindOptions, options: v}
	case 'n':
		*d = DefaultValue{}
	default:
		var v float64
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return errDefaultShape
		}
		*d = NumberDefault(v)
	}
	return nil
}
