package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soleniar/ctrlwave/analysis"
	"github.com/soleniar/ctrlwave/waveio"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Summarize a waveform file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := waveio.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "components: %d\n", w.Dimension())
		fmt.Fprintf(out, "samples:    %d\n", w.SampleCount())
		fmt.Fprintf(out, "interval:   [%g, %g]\n", w.TimeMin(), w.TimeMax())
		fmt.Fprintf(out, "policy:     %s\n", w.Policy())
		fmt.Fprintf(out, "arc length: %g\n", w.ArcLength())
		fmt.Fprintf(out, "energy:     %g\n", analysis.Energy(w))

		for j := 0; j < w.Dimension(); j++ {
			s, err := analysis.Describe(w, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "u%d: mean=%g rms=%g min=%g max=%g\n",
				j, s.Mean, s.RMS, s.Min, s.Max)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
