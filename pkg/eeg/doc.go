// Package eeg recovers signal data and event markers from the proprietary
// recording files written by a clinical EEG acquisition device.
//
// The format carries no usable length fields: an ASCII-ish header of unknown
// size is followed by channel-interleaved little-endian int16 samples, and
// the file tail holds human-readable marker phrases, each preceded by a raw
// little-endian sample index. The package reconstructs all of it with byte
// statistics and fixed layout constants reverse-engineered from device
// output:
//
//   - DetectBoundary finds where the header ends and sample data begins.
//   - DecodeSamples de-interleaves the sample stream into a SignalBuffer.
//   - ScanMarkers finds marker phrases in the tail and recovers their
//     sample indices.
//   - EncodeEvents turns markers into integer-coded event records.
//   - FilterAggregates rejects computed per-condition averages that contain
//     non-finite values.
//
// Every recoverable anomaly is reported through a log.Logger and handled by
// exclusion; no function here fails on malformed sample or marker data.
package eeg
