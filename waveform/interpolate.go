package waveform

import (
	"fmt"
	"sort"
)

// Interpolate evaluates the waveform at an arbitrary time inside its
// sampled interval under the given policy. The time must lie within
// [TimeMin, TimeMax]; both bounds are valid. Every policy starts from the
// same bracket: the latest knot at or before the requested time and the
// earliest knot at or after it.
func (w *Waveform) Interpolate(t float64, p Policy) ([]float64, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: %s", ErrPolicy, p)
	}
	// Negated form so a NaN time, which compares false both ways, is
	// rejected here instead of reaching the knot search.
	if !(t >= w.TimeMin() && t <= w.TimeMax()) {
		return nil, fmt.Errorf("%w: %g not in [%g, %g]",
			ErrTimeRange, t, w.TimeMin(), w.TimeMax())
	}

	// First index with times[i] >= t. t <= TimeMax guarantees high < n,
	// and t >= TimeMin guarantees high > 0 unless t lands on the first knot.
	high := sort.SearchFloat64s(w.times, t)
	low := high
	if w.times[high] != t {
		low = high - 1
	}

	switch p {
	case Latest:
		return w.row(low), nil

	case Nearest:
		if t-w.times[low] <= w.times[high]-t {
			return w.row(low), nil
		}
		return w.row(high), nil

	case Linear:
		if low == high {
			return w.row(low), nil
		}
		tLow, tHigh := w.times[low], w.times[high]
		frac := (t - tLow) / (tHigh - tLow)
		out := make([]float64, w.Dimension())
		for j := range out {
			a := w.values.At(low, j)
			b := w.values.At(high, j)
			out[j] = a + frac*(b-a)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrPolicy, p)
}

// At evaluates the full component vector at time t under the waveform's
// default policy. It is the call-with-one-argument surface.
func (w *Waveform) At(t float64) ([]float64, error) {
	return w.Interpolate(t, w.policy)
}

// ValueAt evaluates a single component at time t under the default policy.
// It is the call-with-(component, time) surface.
func (w *Waveform) ValueAt(component int, t float64) (float64, error) {
	if component < 0 || component >= w.Dimension() {
		return 0, fmt.Errorf("%w: %d of %d", ErrComponentIndex, component, w.Dimension())
	}
	vec, err := w.At(t)
	if err != nil {
		return 0, err
	}
	return vec[component], nil
}
