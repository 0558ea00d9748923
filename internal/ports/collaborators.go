package ports

import (
	"context"

	"github.com/rickerevolte/eegsift/internal/domain"
	"github.com/rickerevolte/eegsift/pkg/eeg"
)

// MontageLookup resolves electrode positions for channel names. The
// positions are attached to the result as metadata only; no recovery
// algorithm reads them.
type MontageLookup interface {
	// Positions returns coordinates for the given channel names.
	// Names without a known position are simply absent from the map.
	Positions(names []string) map[string]domain.SensorPosition
}

// Aggregator computes per-condition averages over epochs cut around event
// samples. Its output is the input of the non-finite filter; the averaging
// algorithm itself is a collaborator service, not recovery logic.
type Aggregator interface {
	// Aggregate averages epochs of buffer around each event, grouped by
	// event code, using the configured epoch window. Label resolution
	// for conditions comes from the code table.
	Aggregate(buffer *eeg.SignalBuffer, events []eeg.EventRecord, codes *eeg.CodeTable) []eeg.Aggregate
}

// Renderer receives the finished result. The reference deployment plugs in
// an interactive signal viewer here; this module ships a text summary.
type Renderer interface {
	// Render hands the result to the display medium.
	Render(ctx context.Context, result *domain.Result) error
}
