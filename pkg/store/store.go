// Package store holds the current schema of an editing session. Every
// mutation replaces the whole value through the copy-on-write helpers in
// package schema; nothing here validates. Callers validate a candidate first
// and only then call SetSchema, see package builder.
package store

import (
	"sync"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Store is an explicit handle to the session schema. Create one per session
// and pass it to the components that need it.
type Store struct {
	mu     sync.RWMutex
	schema schema.Schema
}

// New returns a store holding the empty schema.
func New() *Store {
	return &Store{schema: schema.New()}
}

// Schema returns the current value. Callers must treat it as read-only; use
// the mutation methods or Clone to derive new values.
func (s *Store) Schema() schema.Schema {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema
}

// SetSchema replaces the current value.
func (s *Store) SetSchema(next schema.Schema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema = next
}

// Reset replaces the current value with the empty schema.
func (s *Store) Reset() {
	s.SetSchema(schema.New())
}

// AddRunnable appends a runnable.
func (s *Store) AddRunnable(r schema.Runnable) {
	s.update(func(cur schema.Schema) schema.Schema { return cur.AddRunnable(r) })
}

// RemoveRunnable drops the runnable at index; out of range is a no-op.
func (s *Store) RemoveRunnable(index int) {
	s.update(func(cur schema.Schema) schema.Schema { return cur.RemoveRunnable(index) })
}

// UpdateRunnable replaces the runnable at index.
func (s *Store) UpdateRunnable(index int, r schema.Runnable) {
	s.update(func(cur schema.Schema) schema.Schema { return cur.UpdateRunnable(index, r) })
}

// AddInput appends an input to a runnable.
func (s *Store) AddInput(runnableIndex int, in schema.Input) {
	s.update(func(cur schema.Schema) schema.Schema { return cur.AddInput(runnableIndex, in) })
}

// RemoveInput drops one input of a runnable; out of range is a no-op.
func (s *Store) RemoveInput(runnableIndex, inputIndex int) {
	s.update(func(cur schema.Schema) schema.Schema { return cur.RemoveInput(runnableIndex, inputIndex) })
}

// UpdateInput replaces one input of a runnable.
func (s *Store) UpdateInput(runnableIndex, inputIndex int, in schema.Input) {
	s.update(func(cur schema.Schema) schema.Schema { return cur.UpdateInput(runnableIndex, inputIndex, in) })
}

// ReorderInputs moves the input at startIndex to endIndex.
func (s *Store) ReorderInputs(runnableIndex, startIndex, endIndex int) {
	s.update(func(cur schema.Schema) schema.Schema {
		return cur.ReorderInputs(runnableIndex, startIndex, endIndex)
	})
}

func (s *Store) update(fn func(schema.Schema) schema.Schema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema = fn(s.schema)
}
