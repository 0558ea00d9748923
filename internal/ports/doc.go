// Package ports defines the interfaces that connect the pipeline to
// infrastructure and to external collaborators.
//
// The pipeline (internal/pipeline) depends only on these interfaces;
// adapters under internal/adapters and the collaborator packages
// (internal/montage, internal/epoch) provide the concrete implementations.
//
// # Port interfaces
//
//   - [RecordingSource]: ranged byte access to one recording file
//   - [MontageLookup]: electrode position metadata for channel names
//   - [Aggregator]: per-condition averaging over epochs
//   - [Renderer]: the visualization hand-off at the end of a run
//   - [Logger]: structured diagnostics (re-exported from pkg/log)
//
// Keeping the collaborators behind ports mirrors how the device pipeline is
// deployed: topology lookup, averaging, and display are services the core
// calls into, not part of the format-recovery logic.
package ports
