package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func namedInput(name string) Input {
	return Input{Name: name, Label: name, Field: Textarea{}}
}

func inputNames(r Runnable) []string {
	names := make([]string, len(r.Inputs))
	for i, in := range r.Inputs {
		names[i] = in.Name
	}
	return names
}

func sampleSchema() Schema {
	return Schema{Runnables: []Runnable{
		{
			Type:   RunnableTypeInitial,
			Path:   "r1",
			Inputs: []Input{namedInput("a"), namedInput("b"), namedInput("c"), namedInput("d")},
		},
		{
			Type:   RunnableTypeSecondary,
			Path:   "r2",
			Inputs: []Input{namedInput("x")},
		},
	}}
}

func TestReorderInputs_MovesSingleElement(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a", "d"}},
		{name: "backward", from: 3, to: 0, want: []string{"d", "a", "b", "c"}},
		{name: "same index", from: 1, to: 1, want: []string{"a", "b", "c", "d"}},
		{name: "to last", from: 0, to: 3, want: []string{"b", "c", "d", "a"}},
		{name: "start out of range", from: 7, to: 0, want: []string{"a", "b", "c", "d"}},
		{name: "end out of range", from: 0, to: -1, want: []string{"a", "b", "c", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sampleSchema().ReorderInputs(0, tc.from, tc.to)
			if diff := cmp.Diff(tc.want, inputNames(got.Runnables[0])); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEdit_DoesNotMutateReceiver(t *testing.T) {
	original := sampleSchema()
	before := inputNames(original.Runnables[0])

	edited := original.
		ReorderInputs(0, 0, 3).
		UpdateInput(0, 1, namedInput("z")).
		RemoveInput(0, 0).
		AddInput(0, namedInput("e")).
		UpdateRunnable(1, Runnable{Path: "r2b"}).
		AddRunnable(Runnable{Path: "r3"}).
		RemoveRunnable(0)

	if diff := cmp.Diff(before, inputNames(original.Runnables[0])); diff != "" {
		t.Fatalf("receiver mutated (-before +after):\n%s", diff)
	}
	if original.Runnables[1].Path != "r2" {
		t.Fatalf("runnable path mutated: %q", original.Runnables[1].Path)
	}
	if len(edited.Runnables) != 2 {
		t.Fatalf("expected 2 runnables, got %d", len(edited.Runnables))
	}
	if edited.Runnables[0].Path != "r2b" || edited.Runnables[1].Path != "r3" {
		t.Fatalf("unexpected paths: %q %q", edited.Runnables[0].Path, edited.Runnables[1].Path)
	}
}

func TestEdit_OutOfRangeIsIdentity(t *testing.T) {
	original := sampleSchema()
	cases := map[string]Schema{
		"remove runnable": original.RemoveRunnable(5),
		"update runnable": original.UpdateRunnable(-1, Runnable{Path: "nope"}),
		"add input":       original.AddInput(9, namedInput("q")),
		"remove input":    original.RemoveInput(0, 42),
		"update input":    original.UpdateInput(0, 42, namedInput("q")),
	}
	for name, got := range cases {
		if diff := cmp.Diff(original, got); diff != "" {
			t.Fatalf("%s: expected identity (-want +got):\n%s", name, diff)
		}
	}
}

func TestClone_IsDeep(t *testing.T) {
	original := Schema{Runnables: []Runnable{{
		Path:   "r1",
		Output: &OutputConfig{Tip: "tip"},
		Inputs: []Input{{
			Name:    "choice",
			Label:   "Choice",
			Order:   IntPtr(1),
			Default: ptr(OptionsDefault(Option{Label: "A", Value: "a"})),
			Field:   Dropdown{Options: []Option{{Label: "A", Value: "a"}}},
		}},
	}}}

	clone := original.Clone()
	*clone.Runnables[0].Inputs[0].Order = 5
	clone.Runnables[0].Output.Tip = "changed"
	clone.Runnables[0].Inputs[0].Field.(Dropdown).Options[0].Label = "B"

	if *original.Runnables[0].Inputs[0].Order != 1 {
		t.Fatalf("order aliased")
	}
	if original.Runnables[0].Output.Tip != "tip" {
		t.Fatalf("output aliased")
	}
	if got := original.Runnables[0].Inputs[0].Field.(Dropdown).Options[0].Label; got != "A" {
		t.Fatalf("options aliased, got %q", got)
	}
}

func ptr[T any](v T) *T {
	return &v
}
