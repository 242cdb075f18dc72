package codec

import (
	stderrors "errors"

	"github.com/goliatone/go-errors"
)

// Text codes attached to codec errors.
const (
	TextCodeParseFailed  = "SCHEMA_PARSE_FAILED"
	TextCodeDecodeFailed = "SCHEMA_DECODE_FAILED"
	TextCodeUnsupported  = "SCHEMA_FORMAT_UNSUPPORTED"
)

var (
	// ErrParse marks documents that are not syntactically valid JSON or YAML.
	ErrParse = errors.New("could not parse schema document", errors.CategoryBadInput).
			WithTextCode(TextCodeParseFailed)
	// ErrDecode marks well-formed documents whose values do not fit the schema
	// shape (for example a string where a number is expected).
	ErrDecode = errors.New("schema document has an invalid shape", errors.CategoryBadInput).
			WithTextCode(TextCodeDecodeFailed)
	// ErrUnsupportedFormat is returned for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported schema format", errors.CategoryBadInput).
				WithTextCode(TextCodeUnsupported)
)

// IsParseError reports whether err signals a syntax failure.
func IsParseError(err error) bool {
	return textCode(err) == TextCodeParseFailed
}

// IsDecodeError reports whether err signals a shape failure.
func IsDecodeError(err error) bool {
	return textCode(err) == TextCodeDecodeFailed
}

func textCode(err error) string {
	var ge *errors.Error
	if stderrors.As(err, &ge) {
		return ge.TextCode
	}
	return ""
}

func wrapError(base *errors.Error, source error, metadata map[string]any) *errors.Error {
	err := base.Clone()
	if source != nil {
		err.Source = source
	}
	if len(metadata) > 0 {
		err = err.WithMetadata(metadata)
	}
	return err
}
