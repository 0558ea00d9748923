package eeg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickerevolte/eegsift/pkg/eeg"
)

func TestEncodeEventsFirstSeenOrder(t *testing.T) {
	markers := []eeg.Marker{
		{Onset: 1.0, Label: "Augen auf"},
		{Onset: 2.0, Label: "Augen zu"},
		{Onset: 3.0, Label: "Augen zu"},
		{Onset: 4.0, Label: "Augen zu"},
		{Onset: 5.0, Label: "HV Anfang"},
	}

	records, table := eeg.EncodeEvents(markers, 256.0)

	require.Len(t, records, 5)

	// Codes reflect first-seen order, not frequency.
	code1, _ := table.Code("Augen auf")
	code2, _ := table.Code("Augen zu")
	code3, _ := table.Code("HV Anfang")
	assert.Equal(t, 1, code1)
	assert.Equal(t, 2, code2)
	assert.Equal(t, 3, code3)

	assert.Equal(t, []string{"Augen auf", "Augen zu", "HV Anfang"}, table.Labels())

	assert.Equal(t, eeg.EventRecord{Sample: 256, Code: 1}, records[0])
	assert.Equal(t, eeg.EventRecord{Sample: 512, Code: 2}, records[1])
	assert.Equal(t, eeg.EventRecord{Sample: 768, Code: 2}, records[2])
	assert.Equal(t, eeg.EventRecord{Sample: 1024, Code: 2}, records[3])
	assert.Equal(t, eeg.EventRecord{Sample: 1280, Code: 3}, records[4])
}

func TestEncodeEventsRoundsSampleIndex(t *testing.T) {
	// 0.999 s at 100 Hz is sample 99.9, which rounds up.
	records, _ := eeg.EncodeEvents([]eeg.Marker{{Onset: 0.999, Label: "x"}}, 100.0)

	require.Len(t, records, 1)
	assert.Equal(t, 100, records[0].Sample)
}

func TestEncodeEventsEmpty(t *testing.T) {
	records, table := eeg.EncodeEvents(nil, 256.0)

	assert.Empty(t, records)
	assert.Equal(t, 0, table.Len())
}

func TestCodeTableUnknownLabel(t *testing.T) {
	table := eeg.NewCodeTable()
	table.Assign("known")

	_, ok := table.Code("unknown")
	assert.False(t, ok)
}
