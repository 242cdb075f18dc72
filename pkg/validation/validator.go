package validation

import (
	"sort"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Input count bounds applied to every runnable.
const (
	MinInputs        = 1
	DefaultMaxInputs = 20
)

// Option configures a Validator.
type Option func(*Validator)

// WithOrderContiguity toggles the rule requiring present order values to form
// the sequence 1..k. Enabled by default.
func WithOrderContiguity(enabled bool) Option {
	return func(v *Validator) {
		v.orderContiguity = enabled
	}
}

// WithMaxInputs overrides the maximum number of inputs per runnable. Values
// below MinInputs are ignored.
func WithMaxInputs(limit int) Option {
	return func(v *Validator) {
		if limit >= MinInputs {
			v.maxInputs = limit
		}
	}
}

// Validator holds rule configuration. The zero value is not usable; call New.
type Validator struct {
	orderContiguity bool
	maxInputs       int
}

// New constructs a Validator with the default rule set.
func New(options ...Option) *Validator {
	v := &Validator{
		orderContiguity: true,
		maxInputs:       DefaultMaxInputs,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

var defaultValidator = New()

// ValidateSchema checks a whole schema with the default rule set.
func ValidateSchema(s schema.Schema) Result {
	return defaultValidator.ValidateSchema(s)
}

// ValidateRunnable checks a single runnable with the default rule set.
func ValidateRunnable(r schema.Runnable) Result {
	return defaultValidator.ValidateRunnable(r)
}

// duplicateNameMode selects the duplicate input name message, which differs
// between the schema and the runnable entry points.
type duplicateNameMode int

const (
	duplicateNameSchema duplicateNameMode = iota
	duplicateNameRunnable
)

// ValidateSchema reports all structural issues of s, or else the first
// cross-field violation found walking runnables in order.
func (v *Validator) ValidateSchema(s schema.Schema) Result {
	var issues []Issue
	for i, r := range s.Runnables {
		issues = append(issues, v.structuralRunnable(r, Path{"runnables", i})...)
	}
	if len(issues) > 0 {
		return Failed(issues...)
	}

	seen := make(map[string]struct{}, len(s.Runnables))
	for i, r := range s.Runnables {
		if _, dup := seen[r.Path]; dup {
			return Failed(Issue{
				Path:    Path{"runnables", i, "path"},
				Message: DuplicateRunnablePathMessage(r.Path),
			})
		}
		seen[r.Path] = struct{}{}

		if issue, ok := v.crossFieldRunnable(r, duplicateNameSchema); !ok {
			return Failed(issue).Prefixed("runnables", i)
		}
	}
	return Succeeded()
}

// ValidateRunnable reports all structural issues of r, or else its first
// cross-field violation. Paths are relative to the runnable.
func (v *Validator) ValidateRunnable(r schema.Runnable) Result {
	if issues := v.structuralRunnable(r, nil); len(issues) > 0 {
		return Failed(issues...)
	}
	if issue, ok := v.crossFieldRunnable(r, duplicateNameRunnable); !ok {
		return Failed(issue)
	}
	return Succeeded()
}

func (v *Validator) structuralRunnable(r schema.Runnable, at Path) []Issue {
	var issues []Issue
	if !r.Type.Valid() {
		issues = append(issues, Issue{
			Path:    at.Join("type"),
			Message: invalidEnumMessage(runnableTypeEnum, r.Type),
		})
	}
	if r.Path == "" {
		issues = append(issues, Issue{Path: at.Join("path"), Message: MsgPathRequired})
	}
	switch count := len(r.Inputs); {
	case count < MinInputs:
		issues = append(issues, Issue{Path: at.Join("inputs"), Message: MsgInputsMin})
	case count > v.maxInputs:
		issues = append(issues, Issue{Path: at.Join("inputs"), Message: inputsMaxMessage(v.maxInputs)})
	}
	for j, in := range r.Inputs {
		issues = append(issues, structuralInput(in, at.Join("inputs", j))...)
	}
	return issues
}

func structuralInput(in schema.Input, at Path) []Issue {
	var issues []Issue
	if in.Name == "" {
		issues = append(issues, Issue{Path: at.Join("name"), Message: MsgNameRequired})
	}
	if in.Label == "" {
		issues = append(issues, Issue{Path: at.Join("label"), Message: MsgLabelRequired})
	}
	switch t := in.Type(); {
	case t == "":
		issues = append(issues, Issue{Path: at.Join("type"), Message: MsgTypeRequired})
	case !t.Valid():
		issues = append(issues, Issue{Path: at.Join("type"), Message: invalidEnumMessage(inputTypeEnum, t)})
	}
	return issues
}

// crossFieldRunnable runs completeness, name uniqueness and order contiguity
// in that order and returns the first violation.
func (v *Validator) crossFieldRunnable(r schema.Runnable, mode duplicateNameMode) (Issue, bool) {
	for j, in := range r.Inputs {
		if in.Field == nil || !in.Field.Complete() {
			return Issue{Path: Path{"inputs", j}, Message: MsgInvalidInputConfig}, false
		}
	}

	names := make(map[string]struct{}, len(r.Inputs))
	for _, in := range r.Inputs {
		if _, dup := names[in.Name]; dup {
			message := MsgInputNamesNotUnique
			if mode == duplicateNameRunnable {
				message = DuplicateInputNameMessage(in.Name)
			}
			return Issue{Path: Path{"inputs"}, Message: message}, false
		}
		names[in.Name] = struct{}{}
	}

	if v.orderContiguity && !ordersContiguous(r.Inputs) {
		return Issue{Path: Path{"inputs"}, Message: MsgOrderNotSequential}, false
	}
	return Issue{}, true
}

// ordersContiguous reports whether the present order values, sorted, are
// exactly 1..k. Inputs without an order are ignored.
func ordersContiguous(inputs []schema.Input) bool {
	orders := make([]int, 0, len(inputs))
	for _, in := range inputs {
		if in.Order != nil {
			orders = append(orders, *in.Order)
		}
	}
	sort.Ints(orders)
	for i, order := range orders {
		if order != i+1 {
			return false
		}
	}
	return true
}
