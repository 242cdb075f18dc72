package sessionstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formschema/pkg/history"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/testsupport"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": db,
	}
}

func sampleSnapshot() history.Snapshot {
	h := history.New(schema.New())
	h.Push(testsupport.SampleSchema())
	h.Push(schema.New())
	h.Undo()
	return h.Snapshot()
}

func TestStore_RoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			snap := sampleSnapshot()
			require.NoError(t, store.Save(ctx, "draft", snap))

			got, err := store.Load(ctx, "draft")
			require.NoError(t, err)
			assert.Empty(t, testsupport.CompareSchemas(snap.Present, got.Present))
			require.Len(t, got.Past, 1)
			require.Len(t, got.Future, 1)
			assert.Empty(t, testsupport.CompareSchemas(snap.Future[0], got.Future[0]))
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Save(ctx, "draft", sampleSnapshot()))
			require.NoError(t, store.Save(ctx, "draft", history.New(schema.New()).Snapshot()))

			got, err := store.Load(ctx, "draft")
			require.NoError(t, err)
			assert.Empty(t, got.Present.Runnables)
			assert.Empty(t, got.Past)
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := store.Load(ctx, "missing")
			require.Error(t, err)
			assert.True(t, IsNotFound(err))

			err = store.Delete(ctx, "missing")
			require.Error(t, err)
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			names, err := store.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, names)

			for _, session := range []string{"b", "a", "c"} {
				require.NoError(t, store.Save(ctx, session, sampleSnapshot()))
			}
			names, err = store.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b", "c"}, names)

			require.NoError(t, store.Delete(ctx, "b"))
			names, err = store.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "c"}, names)
		})
	}
}

func TestMemory_IsolatesSnapshots(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	snap := sampleSnapshot()
	require.NoError(t, store.Save(ctx, "draft", snap))

	snap.Present.Runnables = append(snap.Present.Runnables, schema.Runnable{Path: "mutated"})
	got, err := store.Load(ctx, "draft")
	require.NoError(t, err)
	assert.Len(t, got.Present.Runnables, 2)
}

func TestSQLite_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "draft", sampleSnapshot()))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load(ctx, "draft")
	require.NoError(t, err)
	assert.Len(t, got.Present.Runnables, 2)
}
