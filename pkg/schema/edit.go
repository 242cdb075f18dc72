package schema

// AddRunnable returns a schema with r appended.
func (s Schema) AddRunnable(r Runnable) Schema {
	runnables := make([]Runnable, 0, len(s.Runnables)+1)
	runnables = append(runnables, s.Runnables...)
	runnables = append(runnables, r)
	return Schema{Runnables: runnables}
}

// RemoveRunnable returns a schema without the runnable at index. An index out
// of range yields an equal copy.
func (s Schema) RemoveRunnable(index int) Schema {
	runnables := make([]Runnable, 0, len(s.Runnables))
	for i, r := range s.Runnables {
		if i != index {
			runnables = append(runnables, r)
		}
	}
	return Schema{Runnables: runnables}
}

// UpdateRunnable returns a schema with the runnable at index replaced.
func (s Schema) UpdateRunnable(index int, r Runnable) Schema {
	return s.mapRunnable(index, func(Runnable) Runnable { return r })
}

// AddInput returns a schema with in appended to the runnable at runnableIndex.
func (s Schema) AddInput(runnableIndex int, in Input) Schema {
	return s.mapRunnable(runnableIndex, func(r Runnable) Runnable {
		inputs := make([]Input, 0, len(r.Inputs)+1)
		inputs = append(inputs, r.Inputs...)
		r.Inputs = append(inputs, in)
		return r
	})
}

// RemoveInput returns a schema without the input at inputIndex of the
// runnable at runnableIndex.
func (s Schema) RemoveInput(runnableIndex, inputIndex int) Schema {
	return s.mapRunnable(runnableIndex, func(r Runnable) Runnable {
		inputs := make([]Input, 0, len(r.Inputs))
		for i, in := range r.Inputs {
			if i != inputIndex {
				inputs = append(inputs, in)
			}
		}
		r.Inputs = inputs
		return r
	})
}

// UpdateInput returns a schema with one input replaced.
func (s Schema) UpdateInput(runnableIndex, inputIndex int, in Input) Schema {
	return s.mapRunnable(runnableIndex, func(r Runnable) Runnable {
		inputs := make([]Input, len(r.Inputs))
		for i, current := range r.Inputs {
			if i == inputIndex {
				current = in
			}
			inputs[i] = current
		}
		r.Inputs = inputs
		return r
	})
}

// ReorderInputs moves the input at startIndex to endIndex, shifting the
// inputs in between. Both indexes must be in range, otherwise the inputs are
// left as they are.
func (s Schema) ReorderInputs(runnableIndex, startIndex, endIndex int) Schema {
	return s.mapRunnable(runnableIndex, func(r Runnable) Runnable {
		r.Inputs = moveInput(r.Inputs, startIndex, endIndex)
		return r
	})
}

func (s Schema) mapRunnable(index int, fn func(Runnable) Runnable) Schema {
	runnables := make([]Runnable, len(s.Runnables))
	for i, r := range s.Runnables {
		if i == index {
			r = fn(r)
		}
		runnables[i] = r
	}
	return Schema{Runnables: runnables}
}

func moveInput(inputs []Input, from, to int) []Input {
	out := make([]Input, 0, len(inputs))
	if from < 0 || from >= len(inputs) || to < 0 || to >= len(inputs) {
		return append(out, inputs...)
	}
	moved := inputs[from]
	for i, in := range inputs {
		if i != from {
			out = append(out, in)
		}
	}
	out = append(out, Input{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
