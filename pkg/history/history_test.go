package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formschema/pkg/schema"
)

func withPath(path string) schema.Schema {
	return schema.Schema{Runnables: []schema.Runnable{{
		Type:   schema.RunnableTypeInitial,
		Path:   path,
		Inputs: []schema.Input{{Name: "a", Label: "A", Field: schema.Textarea{}}},
	}}}
}

func paths(entries []schema.Schema) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		if len(entry.Runnables) == 0 {
			out[i] = ""
			continue
		}
		out[i] = entry.Runnables[0].Path
	}
	return out
}

func TestPush_AppendsPresentAndClearsFuture(t *testing.T) {
	initial := schema.New()
	a := withPath("a")
	b := withPath("b")

	h := New(initial)
	h.Push(a)
	h.Push(b)

	assert.Equal(t, "b", h.Present().Runnables[0].Path)
	assert.Equal(t, []string{"", "a"}, paths(h.Past()))
	assert.Empty(t, h.Future())
}

func TestUndoRedo(t *testing.T) {
	h := New(schema.New())
	require.False(t, h.Undo())
	require.False(t, h.Redo())

	h.Push(withPath("a"))
	h.Push(withPath("b"))

	require.True(t, h.Undo())
	assert.Equal(t, "a", h.Present().Runnables[0].Path)
	assert.Equal(t, []string{"b"}, paths(h.Future()))
	assert.True(t, h.CanRedo())

	require.True(t, h.Undo())
	assert.Empty(t, h.Present().Runnables)
	assert.False(t, h.CanUndo())
	assert.Equal(t, []string{"a", "b"}, paths(h.Future()))

	require.True(t, h.Redo())
	assert.Equal(t, "a", h.Present().Runnables[0].Path)
	assert.Equal(t, []string{""}, paths(h.Past()))
	assert.Equal(t, []string{"b"}, paths(h.Future()))
}

func TestPushAfterUndo_DiscardsRedoBranch(t *testing.T) {
	h := New(schema.New())
	h.Push(withPath("a"))
	h.Push(withPath("b"))
	require.True(t, h.Undo())

	h.Push(withPath("c"))

	assert.Equal(t, "c", h.Present().Runnables[0].Path)
	assert.Equal(t, []string{"", "a"}, paths(h.Past()))
	assert.Empty(t, h.Future())
	assert.False(t, h.Redo())
}

func TestWithLimit_DropsOldestEntries(t *testing.T) {
	h := New(schema.New(), WithLimit(2))
	for _, p := range []string{"a", "b", "c", "d"} {
		h.Push(withPath(p))
	}
	assert.Equal(t, []string{"b", "c"}, paths(h.Past()))
	assert.Equal(t, "d", h.Present().Runnables[0].Path)
}

func TestSnapshots_AreImmutable(t *testing.T) {
	a := withPath("a")
	h := New(schema.New())
	h.Push(a)

	a.Runnables[0].Path = "mutated"
	assert.Equal(t, "a", h.Present().Runnables[0].Path)

	present := h.Present()
	present.Runnables[0].Inputs[0].Name = "changed"
	assert.Equal(t, "a", h.Present().Runnables[0].Inputs[0].Name)
}

func TestSnapshotRestore(t *testing.T) {
	h := New(schema.New())
	h.Push(withPath("a"))
	h.Push(withPath("b"))
	require.True(t, h.Undo())

	snap := h.Snapshot()

	restored := New(schema.New())
	restored.Restore(snap)

	assert.Equal(t, paths(h.Past()), paths(restored.Past()))
	assert.Equal(t, paths(h.Future()), paths(restored.Future()))
	assert.Equal(t, "a", restored.Present().Runnables[0].Path)
}
