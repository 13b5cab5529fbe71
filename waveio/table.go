package waveio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/soleniar/ctrlwave/waveform"
)

// Table format details. Each row holds the k component values followed by
// the time value, fields in fixed-precision scientific notation. Comment
// lines carry the header and footer; loaders skip them without parsing.
const (
	tableDelimiter = ",\t"
	tableFloat     = "%.12e"
	tableComment   = '#'
)

func encodeTable(dst io.Writer, w *waveform.Waveform, name string) error {
	bw := bufio.NewWriter(dst)

	stamp := time.Now().Format("2006-01-02")
	header := []string{
		"# CTRLWAVE",
		"# CONTROL WAVEFORM TABLE",
		"#",
	}
	if name != "" {
		header = append(header, fmt.Sprintf("# FILENAME : %s", name))
	}
	header = append(header,
		fmt.Sprintf("# DATE : %s", stamp),
		"#",
		"# Each column holds one control component sampled over a discrete set",
		"# of time values, excepting the final column, which holds the time",
		"# values themselves.",
		"#",
	)
	for _, line := range header {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("waveio: write table header: %w", err)
		}
	}

	arr := w.Canonical()
	n, c := arr.Dims()
	fields := make([]string, c)
	for i := range n {
		for j := range c {
			fields[j] = fmt.Sprintf(tableFloat, arr.At(i, j))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, tableDelimiter)); err != nil {
			return fmt.Errorf("waveio: write table row %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprintf(bw, "# END OF TABLE (%d samples)\n", n); err != nil {
		return fmt.Errorf("waveio: write table footer: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("waveio: flush table: %w", err)
	}
	return nil
}

func decodeTable(src io.Reader) (*waveform.Waveform, error) {
	r := csv.NewReader(src)
	r.Comma = ','
	r.Comment = tableComment
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("waveio: read table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty table", waveform.ErrShape)
	}

	n, c := len(records), len(records[0])
	arr := mat.NewDense(n, c, nil)
	for i, record := range records {
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("waveio: parse table row %d, column %d: %w", i, j, err)
			}
			arr.Set(i, j, v)
		}
	}

	return waveform.FromMatrix(arr)
}
