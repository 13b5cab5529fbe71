package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soleniar/ctrlwave/logging"
	"github.com/soleniar/ctrlwave/waveio"
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Convert a waveform file between formats.",
	Long: `Convert reads the waveform at SRC and writes it to DST. Both
formats are inferred from the file extensions.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		src, dst := args[0], args[1]

		format, err := waveio.FormatForPath(dst)
		if err != nil {
			return err
		}

		w, err := waveio.Load(src)
		if err != nil {
			return err
		}

		if err := waveio.Save(w, dst, format); err != nil {
			return err
		}

		logging.Info("converted waveform", logging.Fields{
			"src":    src,
			"dst":    dst,
			"format": string(format),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
