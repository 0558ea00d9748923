// Package render implements the visualization hand-off as a plain text
// summary. The reference deployment attaches an interactive signal viewer
// at this port; rendering waveforms is deliberately not part of this
// module.
package render

import (
	"context"
	"fmt"
	"io"

	"github.com/rickerevolte/eegsift/internal/domain"
)

// AnnotationDuration is the display length in seconds attached to each
// marker annotation, matching the reference viewer setup.
const AnnotationDuration = 1.0

// SummaryWriter implements ports.Renderer by printing a human-readable
// account of the recovered recording.
type SummaryWriter struct {
	w io.Writer
}

// NewSummaryWriter creates a renderer writing to w.
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return &SummaryWriter{w: w}
}

// Render prints the recording summary: dimensions, detected offset, marker
// annotations and surviving aggregates.
func (s *SummaryWriter) Render(ctx context.Context, result *domain.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(s.w, "recording %s\n", result.Path)
	fmt.Fprintf(s.w, "  data offset:   %d bytes\n", result.Offset)
	fmt.Fprintf(s.w, "  channels:      %d (%d with montage positions)\n",
		len(result.ChannelNames), len(result.Positions))
	fmt.Fprintf(s.w, "  samples:       %d per channel (%.3f s at %.1f Hz)\n",
		result.Buffer.SampleCount(),
		result.Buffer.Duration(result.SamplingRate),
		result.SamplingRate)

	fmt.Fprintf(s.w, "  markers in range: %d\n", len(result.Markers))
	for i, m := range result.Markers {
		code := result.Events[i].Code
		fmt.Fprintf(s.w, "    %8.3f s  +%.1f s  [%d] %s\n",
			m.Onset, AnnotationDuration, code, m.Label)
	}

	if len(result.Aggregates) > 0 {
		fmt.Fprintf(s.w, "  aggregates: %d condition(s)\n", len(result.Aggregates))
		for _, a := range result.Aggregates {
			fmt.Fprintf(s.w, "    %-12s %d samples\n", a.Condition, len(a.Samples))
		}
	}

	return nil
}
