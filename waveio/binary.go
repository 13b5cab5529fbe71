package waveio

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/soleniar/ctrlwave/waveform"
)

// The binary format is the gonum dense-matrix encoding of the canonical
// (n, k+1) array. It round-trips exactly.

func encodeBinary(dst io.Writer, w *waveform.Waveform) error {
	if _, err := w.Canonical().MarshalBinaryTo(dst); err != nil {
		return fmt.Errorf("waveio: write binary array: %w", err)
	}
	return nil
}

func decodeBinary(src io.Reader) (*waveform.Waveform, error) {
	var arr mat.Dense
	if _, err := arr.UnmarshalBinaryFrom(src); err != nil {
		return nil, fmt.Errorf("waveio: read binary array: %w", err)
	}
	return waveform.FromMatrix(&arr)
}
