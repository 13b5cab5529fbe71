// Package plot renders control waveforms as line charts, one line per
// component over the sampled interval. It is a read-only consumer of the
// waveform's sampled arrays; rendering failures are reported distinctly
// from data errors.
package plot

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/soleniar/ctrlwave/waveform"
)

var (
	// ErrData is returned when there is no waveform to render.
	ErrData = errors.New("plot: no waveform data")

	// ErrBackend is returned when the rendering backend cannot produce
	// the requested artifact (unsupported image format, writer failure).
	ErrBackend = errors.New("plot: rendering backend failure")
)

// Image formats the vg backends can write.
var supportedFormats = map[string]bool{
	".png": true, ".svg": true, ".pdf": true, ".eps": true,
	".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// Config controls the rendered artifact.
type Config struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultConfig returns the default plot dimensions.
func DefaultConfig() Config {
	return Config{
		Title:  "Control functions",
		Width:  16 * vg.Centimeter,
		Height: 10 * vg.Centimeter,
	}
}

// Controls renders every component of the waveform to the image file at
// path; the image format follows the path extension.
func Controls(w *waveform.Waveform, path string, cfg ...Config) error {
	if w == nil {
		return fmt.Errorf("%w: nil waveform", ErrData)
	}

	conf := DefaultConfig()
	if len(cfg) > 0 {
		conf = cfg[0]
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedFormats[ext] {
		return fmt.Errorf("%w: unsupported image format %q", ErrBackend, ext)
	}

	p := gplot.New()
	p.Title.Text = conf.Title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "u(t)"
	p.X.Min, p.X.Max = w.TimeMin(), w.TimeMax()

	times := w.Times()
	args := make([]any, 0, 2*w.Dimension())
	for j := 0; j < w.Dimension(); j++ {
		col, err := w.Component(j)
		if err != nil {
			return err
		}
		pts := make(plotter.XYs, len(times))
		for i, t := range times {
			pts[i].X = t
			pts[i].Y = col[i]
		}
		args = append(args, fmt.Sprintf("u%d", j), pts)
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}

	if err := p.Save(conf.Width, conf.Height, path); err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return nil
}
