package waveform

import "fmt"

// OverrideComponent returns a new waveform with one component column
// replaced by f sampled over the time vector. The receiver is untouched
// and shares no storage with the result; the time grid carries over
// unchanged, so the ordering invariant holds by construction. Error-model
// collaborators use this as their snapshot-in, snapshot-out primitive.
func (w *Waveform) OverrideComponent(index int, f Func) (*Waveform, error) {
	if index < 0 || index >= w.Dimension() {
		return nil, fmt.Errorf("%w: %d of %d", ErrComponentIndex, index, w.Dimension())
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nil sample function", ErrInput)
	}

	out := w.Clone()
	for i, t := range out.times {
		out.values.Set(i, index, f(t))
	}
	return out, nil
}

// Scale returns a new waveform with every value of the selected components
// multiplied by factor. Unselected components pass through unchanged; a nil
// or empty selection scales all components.
func (w *Waveform) Scale(factor float64, components ...int) (*Waveform, error) {
	for _, c := range components {
		if c < 0 || c >= w.Dimension() {
			return nil, fmt.Errorf("%w: %d of %d", ErrComponentIndex, c, w.Dimension())
		}
	}

	selected := components
	if len(selected) == 0 {
		selected = make([]int, w.Dimension())
		for j := range selected {
			selected[j] = j
		}
	}

	out := w.Clone()
	for _, j := range selected {
		for i := 0; i < out.SampleCount(); i++ {
			out.values.Set(i, j, factor*out.values.At(i, j))
		}
	}
	return out, nil
}
