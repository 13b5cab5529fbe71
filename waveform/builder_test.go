package waveform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/soleniar/ctrlwave/waveform"
)

func TestNew_SampledColumns(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1, 2},
		[]waveform.Component{
			waveform.Samples{0, 1, 0},
			waveform.Samples{1, 0, 1},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, w.Dimension())
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 3, w.SampleCount())
	assert.Equal(t, 0.0, w.TimeMin())
	assert.Equal(t, 2.0, w.TimeMax())

	// Column order follows argument order.
	col0, err := w.Component(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, col0)

	col1, err := w.Component(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, col1)
}

func TestNew_FunctionComponents(t *testing.T) {
	times := []float64{0, 0.25, 0.5, 0.75, 1}

	w, err := waveform.New(times, []waveform.Component{
		waveform.Func(func(t float64) float64 { return math.Sin(math.Pi * t) }),
		waveform.Func(func(t float64) float64 { return math.Cos(math.Pi * t) }),
	})
	require.NoError(t, err)

	col0, err := w.Component(0)
	require.NoError(t, err)
	for i, tv := range times {
		assert.InDelta(t, math.Sin(math.Pi*tv), col0[i], 1e-15)
	}
}

func TestNew_MixedComponents(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1, 2},
		[]waveform.Component{
			waveform.Samples{5, 5, 5},
			waveform.Func(func(t float64) float64 { return 2 * t }),
		},
	)
	require.NoError(t, err)

	col1, err := w.Component(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4}, col1)
}

func TestNew_LengthMismatch(t *testing.T) {
	// 3 values against a 4-element time vector must fail and create nothing.
	w, err := waveform.New(
		[]float64{0, 1, 2, 3},
		[]waveform.Component{waveform.Samples{1, 2, 3}},
	)
	assert.ErrorIs(t, err, waveform.ErrDimensionMismatch)
	assert.Nil(t, w)
}

func TestNew_TimeOrdering(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
	}{
		{"inversion", []float64{0, 2, 1}},
		{"duplicate", []float64{0, 1, 1, 2}},
		{"decreasing", []float64{3, 2, 1}},
		{"nan inside", []float64{0, math.NaN(), 1}},
		{"nan first", []float64{math.NaN(), 0, 1}},
		{"nan last", []float64{0, 1, math.NaN()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols := make(waveform.Samples, len(tc.times))
			_, err := waveform.New(tc.times, []waveform.Component{cols})
			assert.ErrorIs(t, err, waveform.ErrTimeOrder)
		})
	}
}

func TestNew_BadInputs(t *testing.T) {
	_, err := waveform.New([]float64{0, 1}, nil)
	assert.ErrorIs(t, err, waveform.ErrShape, "no components")

	_, err = waveform.New(nil, []waveform.Component{waveform.Samples{}})
	assert.ErrorIs(t, err, waveform.ErrShape, "empty time vector")

	_, err = waveform.New([]float64{0, 1}, []waveform.Component{nil})
	assert.ErrorIs(t, err, waveform.ErrInput, "nil component")

	_, err = waveform.New([]float64{0, 1}, []waveform.Component{waveform.Func(nil)})
	assert.ErrorIs(t, err, waveform.ErrInput, "nil sample function")
}

func TestFromMatrix(t *testing.T) {
	// Two components plus trailing time column.
	arr := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 2,
	})

	w, err := waveform.FromMatrix(arr)
	require.NoError(t, err)

	assert.Equal(t, 2, w.Dimension())
	assert.Equal(t, []float64{0, 1, 2}, w.Times())

	col0, err := w.Component(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, col0)
}

func TestFromMatrix_NaNTimeColumn(t *testing.T) {
	arr := mat.NewDense(3, 2, []float64{
		1, 0,
		2, math.NaN(),
		3, 1,
	})

	w, err := waveform.FromMatrix(arr)
	assert.ErrorIs(t, err, waveform.ErrTimeOrder)
	assert.Nil(t, w)
}

func TestSample(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1},
		[]waveform.Component{waveform.Samples{5, 6}},
	)
	require.NoError(t, err)

	tv, vec, err := w.Sample(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tv)
	assert.Equal(t, []float64{6}, vec)

	_, _, err = w.Sample(2)
	assert.ErrorIs(t, err, waveform.ErrSampleIndex)

	_, _, err = w.Sample(-1)
	assert.ErrorIs(t, err, waveform.ErrSampleIndex)
}

func TestFromMatrix_Shape(t *testing.T) {
	_, err := waveform.FromMatrix(mat.NewDense(3, 1, []float64{0, 1, 2}))
	assert.ErrorIs(t, err, waveform.ErrShape, "missing time column")

	_, err = waveform.FromMatrix(nil)
	assert.ErrorIs(t, err, waveform.ErrInput, "nil matrix")
}

func TestFromMatrix_RoundTripsCanonical(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 0.5, 1.5},
		[]waveform.Component{
			waveform.Samples{1, 2, 3},
			waveform.Samples{-1, 0, 1},
		},
	)
	require.NoError(t, err)

	rebuilt, err := waveform.FromMatrix(w.Canonical())
	require.NoError(t, err)

	assert.Equal(t, w.Times(), rebuilt.Times())
	assert.True(t, mat.Equal(w.Values(), rebuilt.Values()))
}

func TestWithPolicy(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1},
		[]waveform.Component{waveform.Samples{0, 1}},
		waveform.WithPolicy(waveform.Linear),
	)
	require.NoError(t, err)
	assert.Equal(t, waveform.Linear, w.Policy())
	assert.Empty(t, w.Diagnostics())
}

func TestWithPolicy_UnrecognizedFallsBack(t *testing.T) {
	// An invalid default policy is not fatal: construction succeeds with
	// Latest and a recorded diagnostic. Interpolating with the same invalid
	// policy is fatal; the asymmetry is intentional.
	w, err := waveform.New(
		[]float64{0, 1},
		[]waveform.Component{waveform.Samples{0, 1}},
		waveform.WithPolicy(waveform.Policy(42)),
	)
	require.NoError(t, err)
	assert.Equal(t, waveform.Latest, w.Policy())
	require.Len(t, w.Diagnostics(), 1)
	assert.Contains(t, w.Diagnostics()[0], "defaulting to latest")

	_, err = w.Interpolate(0.5, waveform.Policy(42))
	assert.ErrorIs(t, err, waveform.ErrPolicy)
}

func TestNew_NilOptionIgnored(t *testing.T) {
	w, err := waveform.New(
		[]float64{0, 1},
		[]waveform.Component{waveform.Samples{0, 1}},
		nil,
		waveform.WithVerbose(true),
	)
	require.NoError(t, err)
	assert.True(t, w.Verbose())
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]waveform.Policy{
		"latest":  waveform.Latest,
		"nearest": waveform.Nearest,
		"linear":  waveform.Linear,
	} {
		got, err := waveform.ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := waveform.ParsePolicy("cubic")
	assert.ErrorIs(t, err, waveform.ErrPolicy)
}

func TestSetPolicy(t *testing.T) {
	w, err := waveform.New([]float64{0, 1},
		[]waveform.Component{waveform.Samples{0, 1}})
	require.NoError(t, err)

	require.NoError(t, w.SetPolicy(waveform.Nearest))
	assert.Equal(t, waveform.Nearest, w.Policy())

	assert.ErrorIs(t, w.SetPolicy(waveform.Policy(-1)), waveform.ErrPolicy)
	assert.Equal(t, waveform.Nearest, w.Policy(), "failed SetPolicy must not change the default")
}
