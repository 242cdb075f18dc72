package builder

import (
	stderrors "errors"

	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-formschema/pkg/validation"
)

// TextCodeInvalidSchema tags rejected imports.
const TextCodeInvalidSchema = "SCHEMA_FORMAT_INVALID"

// ErrInvalidSchema is returned when an imported document is well-formed but
// does not describe a valid schema. Nothing is committed in that case.
var ErrInvalidSchema = errors.New("Invalid schema format", errors.CategoryValidation).
	WithTextCode(TextCodeInvalidSchema)

// IsInvalidSchema reports whether err is a rejected import.
func IsInvalidSchema(err error) bool {
	var ge *errors.Error
	return stderrors.As(err, &ge) && ge.TextCode == TextCodeInvalidSchema
}

func invalidSchema(source error, issues []validation.Issue) error {
	err := ErrInvalidSchema.Clone()
	if source != nil {
		err.Source = source
	}
	if len(issues) > 0 {
		entries := make([]map[string]any, len(issues))
		for i, issue := range issues {
			entries[i] = map[string]any{
				"path":    issue.Path.String(),
				"message": issue.Message,
			}
		}
		err = err.WithMetadata(map[string]any{"issues": entries})
	}
	return err
}
