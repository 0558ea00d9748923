package eeg

import "math"

// EncodeEvents converts markers into integer-coded event records. Labels
// are assigned codes 1, 2, 3... in first-seen order; repeated labels reuse
// their code. Each record's sample index is the marker onset converted back
// at the given sampling rate.
//
// EncodeEvents always succeeds, including for an empty marker sequence.
func EncodeEvents(markers []Marker, rate float64) ([]EventRecord, *CodeTable) {
	table := NewCodeTable()
	records := make([]EventRecord, 0, len(markers))

	for _, m := range markers {
		records = append(records, EventRecord{
			Sample: int(math.Round(m.Onset * rate)),
			Code:   table.Assign(m.Label),
		})
	}

	return records, table
}
