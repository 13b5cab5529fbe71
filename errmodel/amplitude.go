package errmodel

import (
	"fmt"

	"github.com/soleniar/ctrlwave/waveform"
)

// DefaultAmplitude is the relative amplitude error used when no parameter
// is given.
const DefaultAmplitude = 0.05

// Amplitude models a systematic amplitude miscalibration: every transverse
// component (all but Z) is scaled by 1 + Epsilon.
type Amplitude struct {
	Epsilon float64
}

// NewAmplitude builds an amplitude-error model. With no argument the
// default relative error applies; otherwise the first argument is used.
func NewAmplitude(epsilon ...float64) Amplitude {
	if len(epsilon) == 0 {
		return Amplitude{Epsilon: DefaultAmplitude}
	}
	return Amplitude{Epsilon: epsilon[0]}
}

// Apply returns a new waveform with the transverse components scaled by
// 1 + Epsilon. Waveforms without a Z component scale all components.
func (a Amplitude) Apply(w *waveform.Waveform) (*waveform.Waveform, error) {
	transverse := make([]int, 0, w.Dimension())
	for j := 0; j < w.Dimension(); j++ {
		if j != ComponentZ {
			transverse = append(transverse, j)
		}
	}
	return w.Scale(1+a.Epsilon, transverse...)
}

func (a Amplitude) String() string {
	return fmt.Sprintf("amplitude error: epsilon = %.2e", a.Epsilon)
}
