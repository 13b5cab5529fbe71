package waveform

import "fmt"

// Component is one source for a control column: either a pre-sampled array
// or a function sampled over the time vector at build time. The two
// implementations, Samples and Func, are the only accepted kinds.
type Component interface {
	// column materializes the component over the given time vector.
	column(times []float64) ([]float64, error)
}

// Samples is a pre-sampled component column. Its length must match the
// time vector it is built against.
type Samples []float64

func (s Samples) column(times []float64) ([]float64, error) {
	if len(s) != len(times) {
		return nil, fmt.Errorf("%w: got %d values for %d time points",
			ErrDimensionMismatch, len(s), len(times))
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out, nil
}

// Func is a single-argument control function u(t), sampled at every element
// of the time vector at build time.
type Func func(t float64) float64

func (f Func) column(times []float64) ([]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil sample function", ErrInput)
	}
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = f(t)
	}
	return out, nil
}
