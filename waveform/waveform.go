// Package waveform models time-sampled, multi-component control functions
// used to drive a physical system. A Waveform is built once from sampled
// arrays, control functions, or a combined matrix, and is then read through
// interpolation, measured (arc length), cloned, or transformed into a new
// Waveform (inverse, component override).
package waveform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Waveform is a set of k control components sampled over a strictly
// increasing time grid of n points. Once constructed it is exclusively
// owned: accessors hand out copies and transforms return new values, so no
// internal storage is ever aliased.
type Waveform struct {
	times  []float64  // n sample times, strictly increasing
	values *mat.Dense // n x k component values

	policy  Policy
	verbose bool

	// diags collects non-fatal construction warnings, e.g. an unrecognized
	// default policy that fell back to Latest.
	diags []string
}

// Dimension returns the number of control components k.
func (w *Waveform) Dimension() int {
	_, k := w.values.Dims()
	return k
}

// Len returns the component count, mirroring Dimension.
func (w *Waveform) Len() int {
	return w.Dimension()
}

// SampleCount returns the number of sampled time points n.
func (w *Waveform) SampleCount() int {
	return len(w.times)
}

// TimeMin returns the first sampled time.
func (w *Waveform) TimeMin() float64 {
	return w.times[0]
}

// TimeMax returns the last sampled time.
func (w *Waveform) TimeMax() float64 {
	return w.times[len(w.times)-1]
}

// Times returns a copy of the sampled time vector.
func (w *Waveform) Times() []float64 {
	out := make([]float64, len(w.times))
	copy(out, w.times)
	return out
}

// Values returns a copy of the n x k component value matrix.
func (w *Waveform) Values() *mat.Dense {
	return mat.DenseCopyOf(w.values)
}

// Component returns a copy of one component column.
func (w *Waveform) Component(index int) ([]float64, error) {
	if index < 0 || index >= w.Dimension() {
		return nil, fmt.Errorf("%w: %d of %d", ErrComponentIndex, index, w.Dimension())
	}
	out := make([]float64, w.SampleCount())
	mat.Col(out, index, w.values)
	return out, nil
}

// Sample returns the time and a copy of the component vector at knot i.
func (w *Waveform) Sample(i int) (float64, []float64, error) {
	if i < 0 || i >= w.SampleCount() {
		return 0, nil, fmt.Errorf("%w: %d of %d", ErrSampleIndex, i, w.SampleCount())
	}
	return w.times[i], w.row(i), nil
}

// Canonical returns the (n, k+1) matrix form: component columns in order,
// time as the last column. Construction and persistence share this layout.
func (w *Waveform) Canonical() *mat.Dense {
	n, k := w.values.Dims()
	out := mat.NewDense(n, k+1, nil)
	for i := range n {
		for j := range k {
			out.Set(i, j, w.values.At(i, j))
		}
		out.Set(i, k, w.times[i])
	}
	return out
}

// Policy returns the default interpolation policy.
func (w *Waveform) Policy() Policy {
	return w.policy
}

// SetPolicy changes the default interpolation policy. Unlike the
// construction-time option, an invalid policy here is a fatal error.
func (w *Waveform) SetPolicy(p Policy) error {
	if !p.valid() {
		return fmt.Errorf("%w: %s", ErrPolicy, p)
	}
	w.policy = p
	return nil
}

// Verbose reports whether diagnostic logging is enabled.
func (w *Waveform) Verbose() bool {
	return w.verbose
}

// SetVerbose toggles diagnostic logging.
func (w *Waveform) SetVerbose(v bool) {
	w.verbose = v
}

// Diagnostics returns the non-fatal warnings recorded at build time.
func (w *Waveform) Diagnostics() []string {
	out := make([]string, len(w.diags))
	copy(out, w.diags)
	return out
}

// Clone returns a fully independent deep copy. The copy shares no storage
// with the receiver; policy, verbosity and diagnostics carry over by value.
func (w *Waveform) Clone() *Waveform {
	return &Waveform{
		times:   w.Times(),
		values:  mat.DenseCopyOf(w.values),
		policy:  w.policy,
		verbose: w.verbose,
		diags:   w.Diagnostics(),
	}
}

func (w *Waveform) String() string {
	return fmt.Sprintf("%d-D waveform on t = (%g, %g)", w.Dimension(), w.TimeMin(), w.TimeMax())
}

// row returns a copy of the component vector at knot index i.
func (w *Waveform) row(i int) []float64 {
	k := w.Dimension()
	out := make([]float64, k)
	for j := range k {
		out[j] = w.values.At(i, j)
	}
	return out
}
