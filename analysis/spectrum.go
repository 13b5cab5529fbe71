// Package analysis computes spectra and summary statistics of control
// waveforms.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/soleniar/ctrlwave/waveform"
)

// ErrNonUniform is returned when an operation requires a uniform sample
// grid but the waveform's time steps vary beyond tolerance.
var ErrNonUniform = errors.New("analysis: waveform is not uniformly sampled")

// uniformTolerance is the allowed relative deviation of any time step from
// the mean step.
const uniformTolerance = 1e-9

// Spectrum holds the one-sided magnitude spectrum of a single component,
// up to the Nyquist frequency.
type Spectrum struct {
	Frequencies []float64
	Magnitudes  []float64
}

// Peak returns the frequency with the largest magnitude, ignoring the DC
// bin when the spectrum has more than one bin.
func (s *Spectrum) Peak() float64 {
	start := 0
	if len(s.Magnitudes) > 1 {
		start = 1
	}
	best := start
	for i := start + 1; i < len(s.Magnitudes); i++ {
		if s.Magnitudes[i] > s.Magnitudes[best] {
			best = i
		}
	}
	return s.Frequencies[best]
}

// ComponentSpectrum computes the magnitude spectrum of one component.
// The waveform must be sampled on a uniform time grid; magnitudes are
// normalized so a pure sinusoid of amplitude A peaks near A/2.
func ComponentSpectrum(w *waveform.Waveform, component int) (*Spectrum, error) {
	signal, err := w.Component(component)
	if err != nil {
		return nil, err
	}

	dt, err := uniformStep(w.Times())
	if err != nil {
		return nil, err
	}

	// go-dsp handles all sizes efficiently, including non-power-of-2
	coeffs := fft.FFTReal(signal)

	n := len(signal)
	half := n/2 + 1
	spec := &Spectrum{
		Frequencies: make([]float64, half),
		Magnitudes:  make([]float64, half),
	}
	for i := range half {
		spec.Frequencies[i] = float64(i) / (float64(n) * dt)
		spec.Magnitudes[i] = cmplx.Abs(coeffs[i]) / float64(n)
	}
	return spec, nil
}

// uniformStep returns the sample step of a uniform time grid, or
// ErrNonUniform when the steps vary beyond tolerance.
func uniformStep(times []float64) (float64, error) {
	if len(times) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples", ErrNonUniform)
	}

	mean := (times[len(times)-1] - times[0]) / float64(len(times)-1)
	for i := 1; i < len(times); i++ {
		if math.Abs((times[i]-times[i-1])-mean) > uniformTolerance*math.Abs(mean) {
			return 0, fmt.Errorf("%w: step %d deviates from mean step %g",
				ErrNonUniform, i, mean)
		}
	}
	return mean, nil
}
