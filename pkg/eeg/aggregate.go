package eeg

import (
	"math"

	"github.com/rickerevolte/eegsift/pkg/log"
)

// FilterAggregates drops every aggregate whose waveform contains a
// non-finite value (NaN or ±Inf), emitting one diagnostic per dropped
// condition. The remaining aggregates pass through unchanged and in their
// original order.
func FilterAggregates(aggregates []Aggregate, logger log.Logger) []Aggregate {
	valid := make([]Aggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		if hasNonFinite(agg.Samples) {
			logger.Warn("aggregate contains non-finite values, dropping",
				log.String("condition", agg.Condition))
			continue
		}
		valid = append(valid, agg)
	}
	return valid
}

func hasNonFinite(samples []float64) bool {
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
