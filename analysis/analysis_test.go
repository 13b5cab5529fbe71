package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soleniar/ctrlwave/analysis"
	"github.com/soleniar/ctrlwave/waveform"
)

func TestComponentSpectrum_SinePeak(t *testing.T) {
	// 128 samples over one second: bin spacing is exactly 1 Hz.
	const (
		n    = 128
		freq = 8.0
	)
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / n
	}

	w, err := waveform.New(times, []waveform.Component{
		waveform.Func(func(t float64) float64 {
			return 2 * math.Sin(2*math.Pi*freq*t)
		}),
	})
	require.NoError(t, err)

	spec, err := analysis.ComponentSpectrum(w, 0)
	require.NoError(t, err)

	assert.Len(t, spec.Frequencies, n/2+1)
	assert.InDelta(t, freq, spec.Peak(), 1e-9)

	// Amplitude 2 sinusoid peaks near 1 after normalization.
	peakBin := int(freq)
	assert.InDelta(t, 1.0, spec.Magnitudes[peakBin], 1e-9)
}

func TestComponentSpectrum_NonUniform(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1, 3, 4},
		[]waveform.Component{waveform.Samples{0, 1, 0, -1}},
	)
	require.NoError(t, err)

	_, err = analysis.ComponentSpectrum(w, 0)
	assert.ErrorIs(t, err, analysis.ErrNonUniform)
}

func TestComponentSpectrum_BadComponent(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1},
		[]waveform.Component{waveform.Samples{0, 1}},
	)
	require.NoError(t, err)

	_, err = analysis.ComponentSpectrum(w, 1)
	assert.ErrorIs(t, err, waveform.ErrComponentIndex)
}

func TestDescribe(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1, 2, 3},
		[]waveform.Component{waveform.Samples{2, 2, 2, 2}},
	)
	require.NoError(t, err)

	s, err := analysis.Describe(w, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Mean)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 2.0, s.Max)
	assert.Equal(t, 2.0, s.RMS)
	assert.Equal(t, 0.0, s.StdDev)
}

func TestEnergy(t *testing.T) {
	// |(3,4)|^2 * 1 + |(1,0)|^2 * 2 = 25 + 2.
	w, err := waveform.New(
		[]float64{0, 1, 3},
		[]waveform.Component{
			waveform.Samples{3, 1, 9},
			waveform.Samples{4, 0, 9},
		},
	)
	require.NoError(t, err)

	assert.InDelta(t, 27.0, analysis.Energy(w), 1e-12)
}
