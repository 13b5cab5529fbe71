package waveio

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/soleniar/ctrlwave/waveform"
)

// archiveEntry is the conventional key under which the single canonical
// array is stored inside the compressed container.
const archiveEntry = "arr_0.bin"

func encodeArchive(dst io.Writer, w *waveform.Waveform) error {
	zw := zip.NewWriter(dst)

	entry, err := zw.CreateHeader(&zip.FileHeader{
		Name:   archiveEntry,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("waveio: create archive entry: %w", err)
	}
	if err := encodeBinary(entry, w); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("waveio: close archive: %w", err)
	}
	return nil
}

func decodeArchive(src io.Reader) (*waveform.Waveform, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("waveio: read archive: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("waveio: open archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != archiveEntry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("waveio: open archive entry: %w", err)
		}
		defer rc.Close()
		return decodeBinary(rc)
	}

	return nil, fmt.Errorf("%w: archive is missing entry %q", ErrFormat, archiveEntry)
}
