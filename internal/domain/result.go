package domain

import "github.com/rickerevolte/eegsift/pkg/eeg"

// SensorPosition is a 2D montage coordinate for one electrode, used only as
// metadata on the decoded buffer.
type SensorPosition struct {
	X float64
	Y float64
}

// Result holds everything recovered from one recording file. It is built
// once per pipeline run; rerunning the pipeline replaces it wholesale.
type Result struct {
	// Path is the recording file the result came from.
	Path string

	// Offset is the detected header/data boundary in bytes.
	Offset int

	// ChannelNames lists the channels in buffer order.
	ChannelNames []string

	// SamplingRate is the acquisition rate in Hz.
	SamplingRate float64

	// Buffer is the decoded channel-major signal matrix.
	Buffer *eeg.SignalBuffer

	// Positions maps channel names to montage coordinates. Channels
	// missing from the montage are absent from the map.
	Positions map[string]SensorPosition

	// Markers are the extracted markers whose onset falls inside the
	// decoded signal duration, in file order.
	Markers []eeg.Marker

	// Events are the integer-coded records for Markers.
	Events []eeg.EventRecord

	// Codes is the label-to-code table backing Events.
	Codes *eeg.CodeTable

	// Aggregates are the per-condition averages that passed the
	// non-finite filter.
	Aggregates []eeg.Aggregate
}
