// Package waveio persists waveforms through their canonical (n, k+1)
// matrix form: component columns in order, time as the last column. Three
// container formats are supported - a human-inspectable delimited table, a
// single binary array, and a compressed archive wrapping the binary array.
package waveio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/soleniar/ctrlwave/logging"
	"github.com/soleniar/ctrlwave/waveform"
)

// ErrFormat is returned for a persistence format or file extension that is
// not recognized.
var ErrFormat = errors.New("waveio: format not recognized")

// Format names a supported on-disk representation.
type Format string

const (
	// FormatTable is a delimited text table with a comment header,
	// one row per sample, values in fixed-precision scientific notation.
	FormatTable Format = "table"

	// FormatBinary is a single binary array (gonum dense matrix encoding).
	FormatBinary Format = "binary"

	// FormatArchive is a compressed container wrapping the binary array
	// under a conventional entry name.
	FormatArchive Format = "archive"
)

// Extensions used for format inference, one per format.
const (
	extTable   = ".csv"
	extBinary  = ".bin"
	extArchive = ".wfz"
)

// FormatForPath infers the persistence format from a path's extension.
// It is a pure function of the name; no filesystem state is consulted.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case extTable:
		return FormatTable, nil
	case extBinary:
		return FormatBinary, nil
	case extArchive:
		return FormatArchive, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrFormat, filepath.Ext(path))
	}
}

// Encode writes the waveform to dst in the given format.
func Encode(dst io.Writer, w *waveform.Waveform, format Format) error {
	if w == nil {
		return fmt.Errorf("%w: nil waveform", waveform.ErrInput)
	}

	switch format {
	case FormatTable:
		return encodeTable(dst, w, "")
	case FormatBinary:
		return encodeBinary(dst, w)
	case FormatArchive:
		return encodeArchive(dst, w)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Decode reads a waveform from src in the given format.
func Decode(src io.Reader, format Format) (*waveform.Waveform, error) {
	switch format {
	case FormatTable:
		return decodeTable(src)
	case FormatBinary:
		return decodeBinary(src)
	case FormatArchive:
		return decodeArchive(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Save writes the waveform to path in the given format.
func Save(w *waveform.Waveform, path string, format Format) error {
	if w == nil {
		return fmt.Errorf("%w: nil waveform", waveform.ErrInput)
	}
	if !format.valid() {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("waveio: create %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatTable {
		err = encodeTable(f, w, filepath.Base(path))
	} else {
		err = Encode(f, w, format)
	}
	if err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("waveio: close %s: %w", path, err)
	}

	if w.Verbose() {
		logging.Info("saved waveform", logging.Fields{
			"path":   path,
			"format": string(format),
		})
	}
	return nil
}

// Load reads a waveform from path, inferring the format from the file
// extension.
func Load(path string) (*waveform.Waveform, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	return LoadFormat(path, format)
}

// LoadFormat reads a waveform from path in an explicit format.
func LoadFormat(path string, format Format) (*waveform.Waveform, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("waveio: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, format)
}

func (f Format) valid() bool {
	switch f {
	case FormatTable, FormatBinary, FormatArchive:
		return true
	default:
		return false
	}
}
