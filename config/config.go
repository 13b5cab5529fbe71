// Package config holds the YAML settings consumed by the wavectl CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a settings file holds out-of-range values.
var ErrInvalid = errors.New("config: invalid settings")

// DefaultFilename is the settings file looked up when none is given.
const DefaultFilename = "wavectl.yaml"

// Settings configures the CLI.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Plot controls rendered artifacts.
	Plot PlotSettings `yaml:"plot"`
}

// PlotSettings sizes and titles plot output.
type PlotSettings struct {
	Title    string  `yaml:"title"`
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		LogLevel: "info",
		Plot: PlotSettings{
			Title:    "Control functions",
			WidthCm:  16,
			HeightCm: 10,
		},
	}
}

// Load reads settings from path. An empty path returns the defaults; a
// present file is merged over them.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings to path as YAML.
func (s *Settings) Save(path string) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: marshal settings: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, s.LogLevel)
	}
	if s.Plot.WidthCm <= 0 || s.Plot.HeightCm <= 0 {
		return fmt.Errorf("%w: plot dimensions must be positive", ErrInvalid)
	}
	return nil
}
