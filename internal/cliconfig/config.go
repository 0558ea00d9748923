package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Reference deployment constants, recovered from the device setup.
const (
	// DefaultSamplingRate is the acquisition rate in Hz.
	DefaultSamplingRate = 256.0

	// DefaultTailBytes is how much of the file tail holds marker records.
	DefaultTailBytes = 8192
)

// DefaultChannelNames is the 19-electrode 10-20 set the reference device
// records, in stream order.
func DefaultChannelNames() []string {
	return []string{
		"Fp1", "Fp2", "F3", "F4", "C3", "C4", "P3", "P4", "O1", "O2",
		"F7", "F8", "T3", "T4", "T5", "T6", "Fz", "Cz", "Pz",
	}
}

// Config holds the full eegsift configuration.
type Config struct {
	// File is the recording to process. Either File or WatchDir must be
	// set.
	File string

	// WatchDir, when set, switches to watch mode: recordings appearing
	// in the directory are processed as they arrive.
	WatchDir string

	// Debounce is the settle delay before a changed recording in watch
	// mode is processed.
	Debounce time.Duration

	ChannelNames []string
	SamplingRate float64

	// Boundary detection.
	MinOffset          int
	MaxScan            int
	WindowSize         int
	Step               int
	PrintableThreshold float64
	StddevThreshold    float64
	DefaultOffset      int

	// Sample decoding.
	SampleWidth int
	Scale       float64

	// Marker extraction.
	TailBytes int
	Tokens    []string

	// Epoch averaging window in seconds relative to each event.
	EpochTMin float64
	EpochTMax float64
}

// DefaultConfig returns a Config with the reference deployment values.
func DefaultConfig() Config {
	return Config{
		Debounce:           500 * time.Millisecond,
		ChannelNames:       DefaultChannelNames(),
		SamplingRate:       DefaultSamplingRate,
		MinOffset:          200,
		MaxScan:            20000,
		WindowSize:         1024,
		Step:               32,
		PrintableThreshold: 0.2,
		StddevThreshold:    20.0,
		DefaultOffset:      1024,
		SampleWidth:        2,
		Scale:              0.195,
		TailBytes:          DefaultTailBytes,
		Tokens:             []string{"Augen auf", "Augen zu", "HV Anfang", "HV Ende", "IGNORED"},
		EpochTMin:          -0.1,
		EpochTMax:          0.5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.File == "" && c.WatchDir == "" {
		return fmt.Errorf("either --file or --watch-dir is required")
	}
	if len(c.ChannelNames) == 0 {
		return fmt.Errorf("at least one channel name is required")
	}
	if c.SamplingRate <= 0 {
		return fmt.Errorf("sampling rate must be positive")
	}
	if c.SampleWidth != 1 && c.SampleWidth != 2 && c.SampleWidth != 4 {
		return fmt.Errorf("sample width must be 1, 2 or 4 bytes")
	}
	if c.WindowSize <= 0 || c.Step <= 0 {
		return fmt.Errorf("window size and step must be positive")
	}
	if c.MinOffset < 0 || c.MaxScan < c.MinOffset {
		return fmt.Errorf("scan range [%d, %d] is invalid", c.MinOffset, c.MaxScan)
	}
	if c.TailBytes <= 0 {
		return fmt.Errorf("tail bytes must be positive")
	}
	if len(c.Tokens) == 0 {
		return fmt.Errorf("at least one marker token is required")
	}
	if c.EpochTMax <= c.EpochTMin {
		return fmt.Errorf("epoch window end must be after its start")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}

// configSetter applies layered configuration values while respecting flag
// precedence: a value is skipped when its flag was set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloatPtr sets a float64 from an optional value if present and flag not
// changed. Used for fields where zero and negative are meaningful (epoch
// bounds).
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setStrings sets a string slice if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not
// changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses an int from an environment string.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a float64 from an environment string.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setStringsFromCSV splits a comma-separated environment string.
func (s *configSetter) setStringsFromCSV(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}
