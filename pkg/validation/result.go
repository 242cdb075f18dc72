package validation

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
)

// TextCodeSchemaInvalid tags errors produced by Result.Err.
const TextCodeSchemaInvalid = "SCHEMA_INVALID"

// Path locates a node inside a schema tree. Segments are either field names
// (string) or slice indexes (int), e.g. ["runnables", 0, "inputs", 2].
type Path []any

// Join returns a new path with segments appended.
func (p Path) Join(segments ...any) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	return append(out, segments...)
}

// String renders the path in dotted form with bracketed indexes, e.g.
// runnables[0].inputs[2].options.
func (p Path) String() string {
	var b strings.Builder
	for _, segment := range p {
		switch v := segment.(type) {
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(']')
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(toString(v))
		}
	}
	return b.String()
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Issue is a single located validation problem.
type Issue struct {
	Path    Path   `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of a validation call: Success with no errors, or a
// failure carrying at least one issue.
type Result struct {
	Success bool    `json:"success"`
	Errors  []Issue `json:"errors,omitempty"`
}

// Succeeded returns the successful result.
func Succeeded() Result {
	return Result{Success: true}
}

// Failed returns a failed result carrying the given issues.
func Failed(issues ...Issue) Result {
	return Result{Success: false, Errors: issues}
}

// Messages returns the issue messages in order.
func (r Result) Messages() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make([]string, len(r.Errors))
	for i, issue := range r.Errors {
		out[i] = issue.Message
	}
	return out
}

// Prefixed returns a copy of r with every issue path prefixed.
func (r Result) Prefixed(prefix ...any) Result {
	if r.Success || len(prefix) == 0 {
		return r
	}
	out := Result{Errors: make([]Issue, len(r.Errors))}
	for i, issue := range r.Errors {
		out.Errors[i] = Issue{
			Path:    Path(prefix).Join(issue.Path...),
			Message: issue.Message,
		}
	}
	return out
}

// Err converts a failed result into a validation error carrying the issues
// as metadata. It returns nil for successful results.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	message := "schema validation failed"
	if len(r.Errors) > 0 {
		message = r.Errors[0].Message
	}
	issues := make([]map[string]any, len(r.Errors))
	for i, issue := range r.Errors {
		issues[i] = map[string]any{
			"path":    issue.Path.String(),
			"message": issue.Message,
		}
	}
	return errors.New(message, errors.CategoryValidation).
		WithTextCode(TextCodeSchemaInvalid).
		WithMetadata(map[string]any{"issues": issues})
}
