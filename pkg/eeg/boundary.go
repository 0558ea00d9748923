package eeg

import (
	"math"

	"github.com/rickerevolte/eegsift/pkg/log"
)

// DetectConfig holds the parameters for header/data boundary detection.
// The zero value is not usable; start from DefaultDetectConfig.
type DetectConfig struct {
	// MinOffset is the first candidate byte position. Device headers are
	// never shorter than this.
	MinOffset int

	// MaxScan bounds how far into the file the scan looks. Only the first
	// MaxScan bytes need to be read.
	MaxScan int

	// WindowSize is the number of bytes classified at each candidate.
	WindowSize int

	// Step is the distance between candidate positions.
	Step int

	// PrintableThreshold is the printable fraction below which a window
	// stops looking like header text.
	PrintableThreshold float64

	// StddevThreshold is the byte-value standard deviation above which a
	// window starts looking like packed samples.
	StddevThreshold float64

	// DefaultOffset is returned when no window qualifies.
	DefaultOffset int
}

// DefaultDetectConfig returns the detection parameters tuned against
// reference recordings from the device.
func DefaultDetectConfig() DetectConfig {
	return DetectConfig{
		MinOffset:          200,
		MaxScan:            20000,
		WindowSize:         1024,
		Step:               32,
		PrintableThreshold: 0.2,
		StddevThreshold:    20.0,
		DefaultOffset:      1024,
	}
}

// Classify scores a byte window, returning the fraction of printable bytes
// (ASCII 32..126 plus tab, newline and carriage return) and the population
// standard deviation of the byte values. Header text scores high on the
// first and low on the second; packed samples the opposite.
func Classify(window []byte) (printable float64, stddev float64) {
	if len(window) == 0 {
		return 0, 0
	}

	var printableCount int
	var sum float64
	for _, b := range window {
		if (b >= 32 && b <= 126) || b == '\t' || b == '\n' || b == '\r' {
			printableCount++
		}
		sum += float64(b)
	}
	mean := sum / float64(len(window))

	var sqdiff float64
	for _, b := range window {
		d := float64(b) - mean
		sqdiff += d * d
	}

	printable = float64(printableCount) / float64(len(window))
	stddev = math.Sqrt(sqdiff / float64(len(window)))
	return printable, stddev
}

// DetectBoundary locates the byte offset where the ASCII-ish header ends and
// binary sample data begins. It slides a classification window over head
// (the leading bytes of the file, at most cfg.MaxScan of them) and returns
// the first position whose window is binary-like on both statistics.
//
// When no window qualifies, the documented device default cfg.DefaultOffset
// is returned and a diagnostic is emitted; the scan is deterministic for
// fixed input and parameters.
func DetectBoundary(head []byte, cfg DetectConfig, logger log.Logger) int {
	limit := len(head)
	if cfg.MaxScan < limit {
		limit = cfg.MaxScan
	}

	for i := cfg.MinOffset; i <= limit-cfg.WindowSize; i += cfg.Step {
		printable, stddev := Classify(head[i : i+cfg.WindowSize])
		if printable < cfg.PrintableThreshold && stddev > cfg.StddevThreshold {
			logger.Debug("header/data boundary detected",
				log.Int("offset", i),
				log.Float64("printable_fraction", printable),
				log.Float64("stddev", stddev))
			return i
		}
	}

	logger.Warn("no header/data transition found, using default offset",
		log.Int("default_offset", cfg.DefaultOffset),
		log.Int("scanned_bytes", limit))
	return cfg.DefaultOffset
}
