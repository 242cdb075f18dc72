package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrInvalidAnswer is returned when a scripted or typed answer cannot be
	// used, for example a select index outside the option list.
	ErrInvalidAnswer = errors.New("prompt: invalid answer")
)
