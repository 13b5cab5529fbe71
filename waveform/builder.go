package waveform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/soleniar/ctrlwave/logging"
)

// Option configures construction. A nil Option is ignored, so callers can
// pass options from newer versions of the package without breaking older
// code paths.
type Option func(*buildConfig)

type buildConfig struct {
	policy  Policy
	verbose bool
	diags   []string
}

// WithPolicy sets the default interpolation policy. An unrecognized policy
// value is not fatal: construction falls back to Latest, records a
// diagnostic on the built waveform, and logs a warning. Interpolating
// with an unrecognized policy, by contrast, fails with ErrPolicy; the
// asymmetry is intentional.
func WithPolicy(p Policy) Option {
	return func(cfg *buildConfig) {
		if !p.valid() {
			cfg.policy = Latest
			cfg.diags = append(cfg.diags,
				fmt.Sprintf("interpolation policy %s not recognized, defaulting to latest", p))
			logging.Warn("interpolation policy not recognized, defaulting to latest",
				logging.Fields{"policy": int(p)})
			return
		}
		cfg.policy = p
	}
}

// WithVerbose toggles diagnostic logging on the built waveform.
func WithVerbose(v bool) Option {
	return func(cfg *buildConfig) {
		cfg.verbose = v
	}
}

// New builds a waveform from a time vector and one component source per
// control dimension. Components may mix pre-sampled columns (Samples) and
// control functions (Func) in any order; column order follows argument
// order. The time vector must be strictly increasing and every sampled
// column must match its length.
func New(times []float64, components []Component, opts ...Option) (*Waveform, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("%w: no components", ErrShape)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: empty time vector", ErrShape)
	}

	cols := make([][]float64, len(components))
	for i, c := range components {
		if c == nil {
			return nil, fmt.Errorf("%w: component %d is nil", ErrInput, i)
		}
		col, err := c.column(times)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		cols[i] = col
	}

	return assemble(times, cols, opts)
}

// FromMatrix builds a waveform from the canonical combined form: an
// (n, k+1) matrix whose last column is the time vector and whose remaining
// columns are per-step component values, column order preserved.
func FromMatrix(m mat.Matrix, opts ...Option) (*Waveform, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInput)
	}

	n, c := m.Dims()
	if n < 1 || c < 2 {
		return nil, fmt.Errorf("%w: got shape (%d, %d)", ErrShape, n, c)
	}

	k := c - 1
	times := make([]float64, n)
	cols := make([][]float64, k)
	for j := range k {
		cols[j] = make([]float64, n)
	}
	for i := range n {
		for j := range k {
			cols[j][i] = m.At(i, j)
		}
		times[i] = m.At(i, k)
	}

	return assemble(times, cols, opts)
}

// assemble validates the time ordering once and packs the columns into the
// internal n x k storage.
func assemble(times []float64, cols [][]float64, opts []Option) (*Waveform, error) {
	for i := 1; i < len(times); i++ {
		// Negated form: a NaN time compares false both ways, so it must
		// fail validation rather than slip through.
		if !(times[i] > times[i-1]) {
			return nil, fmt.Errorf("%w: t[%d]=%g, t[%d]=%g",
				ErrTimeOrder, i-1, times[i-1], i, times[i])
		}
	}

	n, k := len(times), len(cols)
	values := mat.NewDense(n, k, nil)
	for j, col := range cols {
		for i, v := range col {
			values.Set(i, j, v)
		}
	}

	cfg := buildConfig{policy: Latest}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	t := make([]float64, n)
	copy(t, times)

	w := &Waveform{
		times:   t,
		values:  values,
		policy:  cfg.policy,
		verbose: cfg.verbose,
		diags:   cfg.diags,
	}

	if w.verbose {
		logging.Debug("built waveform", logging.Fields{
			"dimension": k,
			"samples":   n,
			"t_min":     w.TimeMin(),
			"t_max":     w.TimeMax(),
			"policy":    w.policy.String(),
		})
	}

	return w, nil
}
