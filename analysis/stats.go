package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/soleniar/ctrlwave/waveform"
)

// Stats summarizes one component column.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	RMS    float64
}

// Describe computes summary statistics of one component using gonum.
func Describe(w *waveform.Waveform, component int) (Stats, error) {
	col, err := w.Component(component)
	if err != nil {
		return Stats{}, err
	}

	sumSquares := 0.0
	for _, v := range col {
		sumSquares += v * v
	}

	s := Stats{
		Mean: stat.Mean(col, nil),
		Min:  floats.Min(col),
		Max:  floats.Max(col),
		RMS:  math.Sqrt(sumSquares / float64(len(col))),
	}
	if len(col) > 1 {
		s.StdDev = stat.StdDev(col, nil)
	}
	return s, nil
}

// Energy integrates the squared Euclidean norm of the control vector over
// the sampled interval, using the earlier knot of each segment. This is
// the pulse energy of the waveform under the same orthogonality assumption
// as the arc length.
func Energy(w *waveform.Waveform) float64 {
	times := w.Times()
	values := w.Values()

	energy := 0.0
	row := make([]float64, w.Dimension())
	for i := 0; i < len(times)-1; i++ {
		mat.Row(row, i, values)
		norm := floats.Norm(row, 2)
		energy += norm * norm * (times[i+1] - times[i])
	}
	return energy
}
