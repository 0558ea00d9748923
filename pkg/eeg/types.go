package eeg

// SignalBuffer holds decoded samples in channel-major order:
// Channels[c][i] is sample i of channel c, in physical units.
// A buffer is never mutated after DecodeSamples returns it.
type SignalBuffer struct {
	Channels [][]float64
}

// SampleCount returns the number of samples per channel.
func (b *SignalBuffer) SampleCount() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Empty reports whether the buffer holds no samples.
func (b *SignalBuffer) Empty() bool {
	return b.SampleCount() == 0
}

// Duration returns the recording length in seconds at the given
// sampling rate. Returns 0 for an empty buffer or non-positive rate.
func (b *SignalBuffer) Duration(rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(b.SampleCount()) / rate
}

// Marker is one labeled point-in-time event recovered from the file tail.
type Marker struct {
	// Onset is the event time in seconds from recording start.
	Onset float64

	// Label is the marker phrase as recorded by the device.
	Label string
}

// EventRecord is a Marker reduced to numeric form for downstream analysis.
type EventRecord struct {
	// Sample is the event position as a sample index.
	Sample int

	// Code is the integer assigned to the marker's label.
	Code int
}

// CodeTable maps marker labels to event codes in first-seen order.
// Codes start at 1 and are stable for the lifetime of one encoding run.
type CodeTable struct {
	codes  map[string]int
	labels []string
}

// NewCodeTable creates an empty code table.
func NewCodeTable() *CodeTable {
	return &CodeTable{codes: make(map[string]int)}
}

// Assign returns the code for label, allocating the next code if the
// label has not been seen before.
func (t *CodeTable) Assign(label string) int {
	if code, ok := t.codes[label]; ok {
		return code
	}
	code := len(t.labels) + 1
	t.codes[label] = code
	t.labels = append(t.labels, label)
	return code
}

// Code returns the code for label and whether it has been assigned.
func (t *CodeTable) Code(label string) (int, bool) {
	code, ok := t.codes[label]
	return code, ok
}

// Labels returns the known labels in code order (code 1 first).
func (t *CodeTable) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Len returns the number of assigned labels.
func (t *CodeTable) Len() int {
	return len(t.labels)
}

// Aggregate is a per-condition average computed over repeated epochs.
// It is produced outside this package; FilterAggregates only inspects it.
type Aggregate struct {
	// Condition is the label of the condition the average belongs to.
	Condition string

	// Samples is the averaged waveform.
	Samples []float64
}
