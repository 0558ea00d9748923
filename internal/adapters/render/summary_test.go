package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rickerevolte/eegsift/internal/domain"
	"github.com/rickerevolte/eegsift/pkg/eeg"
)

func TestSummaryWriterRender(t *testing.T) {
	buf := &eeg.SignalBuffer{Channels: [][]float64{make([]float64, 512)}}

	result := &domain.Result{
		Path:         "demo.EEG",
		Offset:       1024,
		ChannelNames: []string{"Cz"},
		SamplingRate: 256.0,
		Buffer:       buf,
		Positions:    map[string]domain.SensorPosition{"Cz": {}},
		Markers:      []eeg.Marker{{Onset: 1.0, Label: "Augen auf"}},
		Events:       []eeg.EventRecord{{Sample: 256, Code: 1}},
		Codes:        eeg.NewCodeTable(),
		Aggregates:   []eeg.Aggregate{{Condition: "Augen auf", Samples: make([]float64, 60)}},
	}

	var out bytes.Buffer
	if err := NewSummaryWriter(&out).Render(context.Background(), result); err != nil {
		t.Fatalf("render: %v", err)
	}

	text := out.String()
	for _, want := range []string{"demo.EEG", "1024", "Augen auf", "512 per channel"} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestSummaryWriterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSummaryWriter(&bytes.Buffer{}).Render(ctx, &domain.Result{Buffer: &eeg.SignalBuffer{}})
	if err == nil {
		t.Fatal("expected context error")
	}
}
