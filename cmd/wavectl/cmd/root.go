package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/soleniar/ctrlwave/config"
	"github.com/soleniar/ctrlwave/logging"
)

var (
	// configPath stores the path to the settings YAML file.
	configPath string

	// settings holds the loaded CLI settings, populated before any
	// subcommand runs.
	settings *config.Settings

	rootCmd = &cobra.Command{
		Use:   "wavectl",
		Short: "Inspect, convert and plot control waveform files.",
		Long: `wavectl works with time-sampled control waveform files.

Supported formats are a delimited text table (.csv), a binary array (.bin)
and a compressed archive (.wfz). Formats are inferred from file extensions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				if _, err := os.Stat(config.DefaultFilename); err == nil {
					path = config.DefaultFilename
				}
			}

			var err error
			settings, err = config.Load(path)
			if err != nil {
				return err
			}

			logging.SetLevel(logging.ParseLevel(settings.LogLevel))
			return nil
		},
	}
)

// Execute runs the wavectl CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to settings file")
}
