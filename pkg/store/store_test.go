package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formschema/pkg/schema"
)

func input(name string) schema.Input {
	return schema.Input{Name: name, Label: name, Field: schema.Toggle{}}
}

func TestStore_StartsEmpty(t *testing.T) {
	s := New()
	require.NotNil(t, s.Schema().Runnables)
	assert.Empty(t, s.Schema().Runnables)
}

func TestStore_Mutations(t *testing.T) {
	s := New()
	s.AddRunnable(schema.Runnable{Type: schema.RunnableTypeInitial, Path: "r1"})
	s.AddInput(0, input("a"))
	s.AddInput(0, input("b"))
	s.AddInput(0, input("c"))

	s.ReorderInputs(0, 2, 0)
	assert.Equal(t, []string{"c", "a", "b"}, names(s.Schema().Runnables[0]))

	s.UpdateInput(0, 1, input("z"))
	assert.Equal(t, []string{"c", "z", "b"}, names(s.Schema().Runnables[0]))

	s.RemoveInput(0, 0)
	assert.Equal(t, []string{"z", "b"}, names(s.Schema().Runnables[0]))

	s.UpdateRunnable(0, schema.Runnable{Type: schema.RunnableTypeSecondary, Path: "r2"})
	assert.Equal(t, "r2", s.Schema().Runnables[0].Path)

	s.RemoveRunnable(3)
	assert.Len(t, s.Schema().Runnables, 1)

	s.RemoveRunnable(0)
	assert.Empty(t, s.Schema().Runnables)
}

func TestStore_SnapshotsSurviveMutation(t *testing.T) {
	s := New()
	s.AddRunnable(schema.Runnable{Type: schema.RunnableTypeInitial, Path: "r1", Inputs: []schema.Input{input("a")}})

	before := s.Schema()
	s.AddInput(0, input("b"))
	s.UpdateInput(0, 0, input("changed"))

	assert.Equal(t, []string{"a"}, names(before.Runnables[0]))
	assert.Equal(t, []string{"changed", "b"}, names(s.Schema().Runnables[0]))
}

func TestStore_Reset(t *testing.T) {
	s := New()
	s.SetSchema(schema.Schema{Runnables: []schema.Runnable{{Path: "r1"}}})
	s.Reset()
	assert.Equal(t, schema.New(), s.Schema())
}

func names(r schema.Runnable) []string {
	out := make([]string, len(r.Inputs))
	for i, in := range r.Inputs {
		out[i] = in.Name
	}
	return out
}
