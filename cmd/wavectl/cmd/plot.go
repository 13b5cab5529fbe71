package cmd

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/soleniar/ctrlwave/plot"
	"github.com/soleniar/ctrlwave/waveio"
)

var plotCmd = &cobra.Command{
	Use:   "plot FILE OUT",
	Short: "Render the components of a waveform file to an image.",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		w, err := waveio.Load(args[0])
		if err != nil {
			return err
		}

		cfg := plot.Config{
			Title:  settings.Plot.Title,
			Width:  vg.Length(settings.Plot.WidthCm) * vg.Centimeter,
			Height: vg.Length(settings.Plot.HeightCm) * vg.Centimeter,
		}
		return plot.Controls(w, args[1], cfg)
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
}
