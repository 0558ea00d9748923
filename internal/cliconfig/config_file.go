package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML, with string durations and optional
// floats so unset fields are distinguishable from zero.
type FileConfig struct {
	File     string `toml:"file"`
	WatchDir string `toml:"watch_dir"`
	Debounce string `toml:"debounce"`

	Channels     []string `toml:"channels"`
	SamplingRate float64  `toml:"sampling_rate"`

	MinOffset          int      `toml:"min_offset"`
	MaxScan            int      `toml:"max_scan"`
	WindowSize         int      `toml:"window_size"`
	Step               int      `toml:"step"`
	PrintableThreshold float64  `toml:"printable_threshold"`
	StddevThreshold    float64  `toml:"stddev_threshold"`
	DefaultOffset      int      `toml:"default_offset"`
	SampleWidth        int      `toml:"sample_width"`
	Scale              float64  `toml:"scale"`
	TailBytes          int      `toml:"tail_bytes"`
	Tokens             []string `toml:"tokens"`
	EpochTMin          *float64 `toml:"epoch_tmin"`
	EpochTMax          *float64 `toml:"epoch_tmax"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.eegsift/config.toml when the home directory
// is accessible, "" otherwise.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".eegsift", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies file configuration onto cfg, skipping fields
// whose flags were set explicitly.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", fc.File, &cfg.File)
	s.setString("watch-dir", fc.WatchDir, &cfg.WatchDir)
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setStrings("channels", fc.Channels, &cfg.ChannelNames)
	s.setFloat("sampling-rate", fc.SamplingRate, &cfg.SamplingRate)

	s.setInt("min-offset", fc.MinOffset, &cfg.MinOffset)
	s.setInt("max-scan", fc.MaxScan, &cfg.MaxScan)
	s.setInt("window-size", fc.WindowSize, &cfg.WindowSize)
	s.setInt("step", fc.Step, &cfg.Step)
	s.setFloat("printable-threshold", fc.PrintableThreshold, &cfg.PrintableThreshold)
	s.setFloat("stddev-threshold", fc.StddevThreshold, &cfg.StddevThreshold)
	s.setInt("default-offset", fc.DefaultOffset, &cfg.DefaultOffset)
	s.setInt("sample-width", fc.SampleWidth, &cfg.SampleWidth)
	s.setFloat("scale", fc.Scale, &cfg.Scale)
	s.setInt("tail-bytes", fc.TailBytes, &cfg.TailBytes)
	s.setStrings("tokens", fc.Tokens, &cfg.Tokens)
	s.setFloatPtr("epoch-tmin", fc.EpochTMin, &cfg.EpochTMin)
	s.setFloatPtr("epoch-tmax", fc.EpochTMax, &cfg.EpochTMax)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
