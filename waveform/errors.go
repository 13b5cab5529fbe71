package waveform

import "errors"

// Sentinel errors returned by construction, interpolation and transform
// operations. Callers match them with errors.Is.
var (
	// ErrInput is returned when a constructor argument is not usable as a
	// component source (nil component, nil sample function).
	ErrInput = errors.New("waveform: input is not a sampled column or sample function")

	// ErrShape is returned when a combined matrix lacks a component column
	// or a time column, or when no components are given.
	ErrShape = errors.New("waveform: matrix must have at least one component column and a trailing time column")

	// ErrTimeOrder is returned when the time vector is not strictly increasing.
	ErrTimeOrder = errors.New("waveform: time vector is not strictly increasing")

	// ErrDimensionMismatch is returned when a component column length does
	// not match the time vector.
	ErrDimensionMismatch = errors.New("waveform: component length does not match time vector")

	// ErrTimeRange is returned when an interpolation time lies outside the
	// sampled interval.
	ErrTimeRange = errors.New("waveform: time lies outside the sampled interval")

	// ErrPolicy is returned for an unrecognized interpolation policy.
	ErrPolicy = errors.New("waveform: interpolation policy not recognized")

	// ErrComponentIndex is returned when a component index is out of range.
	ErrComponentIndex = errors.New("waveform: component index out of range")

	// ErrSampleIndex is returned when a sample (knot) index is out of range.
	ErrSampleIndex = errors.New("waveform: sample index out of range")
)
