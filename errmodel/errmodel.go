// Package errmodel applies parameterized physical error models to control
// waveforms. Models consume a waveform as a value-type snapshot and return
// a new waveform; they never alias the input's storage, and the time
// ordering invariant of the input carries through untouched.
package errmodel

import (
	"errors"

	"github.com/soleniar/ctrlwave/waveform"
)

// ErrDimension is returned when a waveform lacks the component a model
// needs to act on.
var ErrDimension = errors.New("errmodel: waveform has too few components for this model")

// Standard component indices for a three-axis control waveform.
const (
	ComponentX = 0
	ComponentY = 1
	ComponentZ = 2
)

// Model is a parameterized error process over a control waveform.
type Model interface {
	// Apply returns a new waveform with the model's distortion applied.
	Apply(w *waveform.Waveform) (*waveform.Waveform, error)

	// String describes the model and its parameters.
	String() string
}
