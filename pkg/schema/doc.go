// Package schema defines the form schema value types: a Schema is an ordered
// list of runnables, each runnable an ordered list of typed inputs. Inputs carry
// their type-specific fields through the FieldSpec sum type so each input kind
// only exposes the fields it understands.
//
// Values are treated as immutable. The editing helpers on Schema (AddRunnable,
// UpdateInput, ReorderInputs and friends) return a new Schema and never write
// through the receiver's slices, so a committed schema can be shared freely
// with history snapshots and renderers.
package schema
