// Package history keeps the linear undo/redo stack of committed schemas.
package history

import (
	"sync"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Option configures a History.
type Option func(*History)

// WithLimit caps the number of past entries retained. Zero or negative
// values keep every entry.
func WithLimit(limit int) Option {
	return func(h *History) {
		if limit > 0 {
			h.limit = limit
		}
	}
}

// History holds past, present and future schema snapshots. Snapshots are
// copied on the way in and out so they cannot change once pushed.
type History struct {
	mu      sync.RWMutex
	past    []schema.Schema
	present schema.Schema
	future  []schema.Schema
	limit   int
}

// New returns a history whose present is initial.
func New(initial schema.Schema, options ...Option) *History {
	h := &History{present: initial.Clone()}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Push moves present onto the end of past, makes next the present and
// discards any redo entries.
func (h *History) Push(next schema.Schema) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = append(h.past, h.present)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = append([]schema.Schema(nil), h.past[len(h.past)-h.limit:]...)
	}
	h.present = next.Clone()
	h.future = nil
}

// Undo steps back one entry. It reports false when there is nothing to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return false
	}
	last := len(h.past) - 1
	previous := h.past[last]
	h.past = h.past[:last:last]
	h.future = append([]schema.Schema{h.present}, h.future...)
	h.present = previous
	return true
}

// Redo re-applies the most recently undone entry. It reports false when the
// redo branch is empty.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
	return true
}

// CanUndo reports whether Undo would move.
func (h *History) CanUndo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.past) > 0
}

// CanRedo reports whether Redo would move.
func (h *History) CanRedo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.future) > 0
}

// Present returns a copy of the current entry.
func (h *History) Present() schema.Schema {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.present.Clone()
}

// Past returns copies of the past entries, oldest first.
func (h *History) Past() []schema.Schema {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneAll(h.past)
}

// Future returns copies of the redo entries, next first.
func (h *History) Future() []schema.Schema {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneAll(h.future)
}

// Snapshot is a serialisable copy of a history.
type Snapshot struct {
	Past    []schema.Schema `json:"past"`
	Present schema.Schema   `json:"present"`
	Future  []schema.Schema `json:"future"`
}

// Snapshot returns a deep copy of the current state.
func (h *History) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Snapshot{
		Past:    cloneAll(h.past),
		Present: h.present.Clone(),
		Future:  cloneAll(h.future),
	}
}

// Restore replaces the state with a copy of snap. The limit, when set, is
// applied to the restored past.
func (h *History) Restore(snap Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = cloneAll(snap.Past)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.present = snap.Present.Clone()
	h.future = cloneAll(snap.Future)
}

func cloneAll(entries []schema.Schema) []schema.Schema {
	out := make([]schema.Schema, len(entries))
	for i, entry := range entries {
		out[i] = entry.Clone()
	}
	return out
}
