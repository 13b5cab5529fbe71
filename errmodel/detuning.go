package errmodel

import (
	"fmt"

	"github.com/soleniar/ctrlwave/waveform"
)

// DefaultDetuning is the detuning strength used when no parameter is given.
const DefaultDetuning = 0.1

// Detuning models a static frequency offset: the Z component of the
// control waveform is overwritten by the constant detuning strength Delta.
type Detuning struct {
	Delta float64
}

// NewDetuning builds a detuning model. With no argument the default
// strength applies; otherwise the first argument is used.
func NewDetuning(delta ...float64) Detuning {
	if len(delta) == 0 {
		return Detuning{Delta: DefaultDetuning}
	}
	return Detuning{Delta: delta[0]}
}

// Apply returns a new waveform whose Z column holds the constant Delta.
// The waveform must have at least three components.
func (d Detuning) Apply(w *waveform.Waveform) (*waveform.Waveform, error) {
	if w.Dimension() <= ComponentZ {
		return nil, fmt.Errorf("%w: detuning needs a Z component, waveform has %d",
			ErrDimension, w.Dimension())
	}
	return w.OverrideComponent(ComponentZ, func(float64) float64 { return d.Delta })
}

func (d Detuning) String() string {
	return fmt.Sprintf("detuning error: delta = %.2e", d.Delta)
}
