// Package validation checks form schemas against structural and cross-field
// rules.
//
// Validation runs in two tiers. The structural tier walks the whole node and
// reports every shape problem it finds (empty identifiers, unknown enum values,
// input count bounds). Only when the structure is sound does the cross-field
// tier run (type-specific completeness, unique paths and names, contiguous
// order numbers), and that tier stops at the first violation. Callers and
// tests can therefore rely on the exact first message for semantic problems.
//
// Malformed data never produces a Go error or a panic; it produces a failed
// Result carrying located issues.
package validation
