package waveform

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ArcLength measures the path length of the waveform trajectory: the sum
// over consecutive knots of the Euclidean norm of the earlier knot's
// component vector, weighted by the elapsed time of the segment.
//
// The Euclidean norm assumes orthogonal component axes. Control algebras
// with a non-orthogonal metric are not represented; this is a documented
// simplification, kept rather than generalized.
func (w *Waveform) ArcLength() float64 {
	length := 0.0
	row := make([]float64, w.Dimension())
	for i := 0; i < w.SampleCount()-1; i++ {
		dt := w.times[i+1] - w.times[i]
		mat.Row(row, i, w.values)
		length += floats.Norm(row, 2) * dt
	}
	return length
}

// Inverse returns a new waveform describing backward propagation through
// the same control sequence: the knot order is reversed, every component
// value is negated, and the reversed times are re-anchored so the result
// still starts at the original TimeMin. Formally the new time at former
// index n-1-i is TimeMin + TimeMax - t_i, which keeps the strict ordering
// invariant and makes Inverse an exact involution.
func (w *Waveform) Inverse() *Waveform {
	n, k := w.values.Dims()
	tMin, tMax := w.TimeMin(), w.TimeMax()

	times := make([]float64, n)
	values := mat.NewDense(n, k, nil)
	for i := range n {
		src := n - 1 - i
		times[i] = tMin + tMax - w.times[src]
		for j := range k {
			values.Set(i, j, -w.values.At(src, j))
		}
	}

	return &Waveform{
		times:   times,
		values:  values,
		policy:  w.policy,
		verbose: w.verbose,
	}
}
