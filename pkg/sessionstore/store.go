// Package sessionstore persists editing sessions (the full undo history) on
// the local machine so the CLI can resume work between invocations.
package sessionstore

import (
	"context"
	stderrors "errors"

	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-formschema/pkg/history"
	"github.com/goliatone/go-formschema/pkg/schema"
)

// TextCodeNotFound tags lookups of unknown sessions.
const TextCodeNotFound = "SESSION_NOT_FOUND"

// ErrNotFound is returned when a named session does not exist.
var ErrNotFound = errors.New("session not found", errors.CategoryBadInput).
	WithTextCode(TextCodeNotFound)

// Store saves and loads session snapshots by name.
type Store interface {
	Load(ctx context.Context, name string) (history.Snapshot, error)
	Save(ctx context.Context, name string, snap history.Snapshot) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// IsNotFound reports whether err is ErrNotFound.
func IsNotFound(err error) bool {
	var ge *errors.Error
	return stderrors.As(err, &ge) && ge.TextCode == TextCodeNotFound
}

func notFound(name string) error {
	return ErrNotFound.Clone().WithMetadata(map[string]any{"session": name})
}

func cloneSnapshot(snap history.Snapshot) history.Snapshot {
	return history.Snapshot{
		Past:    cloneEntries(snap.Past),
		Present: snap.Present.Clone(),
		Future:  cloneEntries(snap.Future),
	}
}

func cloneEntries(entries []schema.Schema) []schema.Schema {
	out := make([]schema.Schema, len(entries))
	for i, entry := range entries {
		out[i] = entry.Clone()
	}
	return out
}
