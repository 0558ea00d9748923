// Package epoch implements the aggregate-computation collaborator: it cuts
// fixed windows around event samples and averages them per condition. The
// recovery core only ever sees its output through the non-finite filter.
package epoch

import (
	"math"

	"github.com/rickerevolte/eegsift/pkg/eeg"
)

// Averager computes per-condition averages over epochs. The window is
// expressed in seconds relative to the event sample, pre-stimulus negative.
type Averager struct {
	rate float64
	tmin float64
	tmax float64
}

// NewAverager creates an averager for the given sampling rate and epoch
// window. The reference deployment uses -0.1 s to +0.5 s.
func NewAverager(rate, tmin, tmax float64) *Averager {
	return &Averager{rate: rate, tmin: tmin, tmax: tmax}
}

// Aggregate averages epochs around each event, grouped by event code, into
// one waveform per condition. Within an epoch, channels are averaged down
// to a single trace before epochs are averaged, so every condition yields
// one sequence of epoch-window length.
//
// Epochs that would reach outside the buffer are skipped. A condition whose
// every epoch was skipped still appears in the output, as an all-NaN
// waveform; deciding what to do with those is the validator's job, not
// ours.
func (a *Averager) Aggregate(buffer *eeg.SignalBuffer, events []eeg.EventRecord, codes *eeg.CodeTable) []eeg.Aggregate {
	epochLen := int(math.Round((a.tmax - a.tmin) * a.rate))
	if epochLen <= 0 {
		return nil
	}
	startShift := int(math.Round(a.tmin * a.rate))

	labels := codes.Labels()
	sums := make([][]float64, len(labels))
	counts := make([]int, len(labels))
	for i := range sums {
		sums[i] = make([]float64, epochLen)
	}

	for _, ev := range events {
		cond := ev.Code - 1
		if cond < 0 || cond >= len(labels) {
			continue
		}
		start := ev.Sample + startShift
		if start < 0 || start+epochLen > buffer.SampleCount() {
			continue
		}
		for i := 0; i < epochLen; i++ {
			sums[cond][i] += channelMean(buffer, start+i)
		}
		counts[cond]++
	}

	out := make([]eeg.Aggregate, 0, len(labels))
	for cond, label := range labels {
		samples := make([]float64, epochLen)
		for i := range samples {
			if counts[cond] == 0 {
				samples[i] = math.NaN()
			} else {
				samples[i] = sums[cond][i] / float64(counts[cond])
			}
		}
		out = append(out, eeg.Aggregate{Condition: label, Samples: samples})
	}
	return out
}

func channelMean(buffer *eeg.SignalBuffer, sample int) float64 {
	if len(buffer.Channels) == 0 {
		return 0
	}
	var sum float64
	for _, ch := range buffer.Channels {
		sum += ch[sample]
	}
	return sum / float64(len(buffer.Channels))
}
