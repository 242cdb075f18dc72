// Package builder ties the schema store, the history and the validator into
// an editing session. Every change goes through Commit: the candidate is
// validated first and only a successful candidate replaces the stored schema
// and becomes a new history entry. A failed candidate leaves both untouched
// and is reported through Issues.
package builder

import (
	"sync"

	"github.com/goliatone/go-formschema/pkg/codec"
	"github.com/goliatone/go-formschema/pkg/history"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/store"
	"github.com/goliatone/go-formschema/pkg/validation"
)

// Normalizer rewrites a candidate before it is validated.
type Normalizer func(schema.Schema) schema.Schema

// Option configures a Session.
type Option func(*Session)

// WithValidator replaces the default validator.
func WithValidator(v *validation.Validator) Option {
	return func(s *Session) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithNormalizer runs fn on every candidate before validation.
func WithNormalizer(fn Normalizer) Option {
	return func(s *Session) {
		s.normalize = fn
	}
}

// WithHistoryLimit caps the number of undo entries.
func WithHistoryLimit(limit int) Option {
	return func(s *Session) {
		s.historyLimit = limit
	}
}

// WithInitial starts the session from an existing schema instead of the
// empty one. The value is not validated.
func WithInitial(initial schema.Schema) Option {
	return func(s *Session) {
		s.initial = initial.Clone()
	}
}

// WithLogger sets the logger used for commit and import events.
func WithLogger(logger Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session is a single-user editing session.
type Session struct {
	mu           sync.Mutex
	store        *store.Store
	history      *history.History
	validator    *validation.Validator
	normalize    Normalizer
	logger       Logger
	issues       []validation.Issue
	initial      schema.Schema
	historyLimit int
}

// New returns a session holding the empty schema with an empty history.
func New(options ...Option) *Session {
	s := &Session{
		validator: validation.New(),
		logger:    nopLogger{},
		initial:   schema.New(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.store = store.New()
	s.store.SetSchema(s.initial)
	s.history = history.New(s.initial, history.WithLimit(s.historyLimit))
	return s
}

// Schema returns the committed schema.
func (s *Session) Schema() schema.Schema {
	return s.store.Schema()
}

// History exposes the undo stack for inspection.
func (s *Session) History() *history.History {
	return s.history
}

// Commit validates candidate and, on success, makes it the committed schema
// and pushes it onto the history. On failure the issues are recorded and
// nothing else changes.
func (s *Session) Commit(candidate schema.Schema) validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(candidate)
}

// Apply builds a candidate from the committed schema with fn and commits it.
func (s *Session) Apply(fn func(schema.Schema) schema.Schema) validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(fn(s.store.Schema()))
}

func (s *Session) commitLocked(candidate schema.Schema) validation.Result {
	if s.normalize != nil {
		candidate = s.normalize(candidate)
	}
	result := s.validator.ValidateSchema(candidate)
	if !result.Success {
		s.issues = append([]validation.Issue(nil), result.Errors...)
		s.logger.Debug("commit rejected", "issues", len(result.Errors), "first", firstMessage(result))
		return result
	}
	s.store.SetSchema(candidate)
	s.history.Push(candidate)
	s.issues = nil
	s.logger.Debug("commit accepted", "runnables", len(candidate.Runnables))
	return result
}

// AddRunnable appends r.
func (s *Session) AddRunnable(r schema.Runnable) validation.Result {
	return s.Apply(func(cur schema.Schema) schema.Schema { return cur.AddRunnable(r) })
}

// RemoveRunnable drops the runnable at index.
func (s *Session) RemoveRunnable(index int) validation.Result {
	return s.Apply(func(cur schema.Schema) schema.Schema { return cur.RemoveRunnable(index) })
}

// UpdateRunnable replaces the runnable at index.
func (s *Session) UpdateRunnable(index int, r schema.Runnable) validation.Result {
	return s.Apply(func(cur schema.Schema) schema.Schema { return cur.UpdateRunnable(index, r) })
}

// AddInput appends an input to the runnable at runnableIndex.
func (s *Session) AddInput(runnableIndex int, in schema.Input) validation.Result {
	return s.Apply(func(cur schema.Schema) schema.Schema { return cur.AddInput(runnableIndex, in) })
}

// RemoveInput drops one input.
func (s *Session) RemoveInput(runnableIndex, inputIndex int) validation.Result {
	return s.Apply(func(cur schema.Schema) schema.Schema { return cur.RemoveInput(runnableIndex, inputIndex) })
}

// UpdateInput replaces one input.
func (s *Session) UpdateInput(runnableIndex, inputIndex int, in schema.Input) validation.Result {
	return s.Apply(func(cur schema.Schema) schema.Schema {
		return cur.UpdateInput(runnableIndex, inputIndex, in)
	})
}

// ReorderInputs moves an input within its runnable.
func (s *Session) ReorderInputs(runnableIndex, startIndex, endIndex int) validation.Result {
	return s.Apply(func(cur schema.Schema) schema.Schema {
		return cur.ReorderInputs(runnableIndex, startIndex, endIndex)
	})
}

// Import replaces the committed schema with a JSON document. Syntax errors
// are returned as codec parse errors. Documents that decode but do not fit
// or do not validate are rejected with ErrInvalidSchema. Either failure
// leaves the session unchanged.
func (s *Session) Import(data []byte) error {
	return s.ImportFormat(data, codec.FormatJSON)
}

// ImportFormat is Import for any supported document format.
func (s *Session) ImportFormat(data []byte, format codec.Format) error {
	candidate, err := codec.Decode(data, format)
	if err != nil {
		if codec.IsDecodeError(err) {
			s.logger.Warn("import rejected", "format", string(format), "error", err)
			return invalidSchema(err, nil)
		}
		s.logger.Warn("import failed", "format", string(format), "error", err)
		return err
	}

	result := s.Commit(candidate)
	if !result.Success {
		s.logger.Warn("import rejected", "format", string(format), "issues", len(result.Errors), "first", firstMessage(result))
		return invalidSchema(result.Err(), result.Errors)
	}
	s.logger.Info("schema imported", "format", string(format), "runnables", len(candidate.Runnables))
	return nil
}

// Export serialises the committed schema as JSON. It never validates.
func (s *Session) Export() ([]byte, error) {
	return codec.Export(s.Schema())
}

// ExportFormat is Export for any supported document format.
func (s *Session) ExportFormat(format codec.Format) ([]byte, error) {
	return codec.Encode(s.Schema(), format)
}

// Undo steps back one committed entry. It reports false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.history.Undo() {
		return false
	}
	s.store.SetSchema(s.history.Present())
	s.issues = nil
	return true
}

// Redo re-applies the most recently undone entry.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.history.Redo() {
		return false
	}
	s.store.SetSchema(s.history.Present())
	s.issues = nil
	return true
}

// Reset commits the empty schema. It is undoable like any other commit.
func (s *Session) Reset() validation.Result {
	return s.Commit(schema.New())
}

// Issues returns the issues of the last rejected commit, if any.
func (s *Session) Issues() []validation.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]validation.Issue(nil), s.issues...)
}

// ClearIssues forgets the last rejection.
func (s *Session) ClearIssues() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = nil
}

// Snapshot returns the history state for persistence.
func (s *Session) Snapshot() history.Snapshot {
	return s.history.Snapshot()
}

// Restore replaces the history with snap and syncs the committed schema to
// its present entry. Restored entries are trusted and not revalidated.
func (s *Session) Restore(snap history.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Restore(snap)
	s.store.SetSchema(s.history.Present())
	s.issues = nil
}

func firstMessage(result validation.Result) string {
	if len(result.Errors) == 0 {
		return ""
	}
	return result.Errors[0].Message
}
