package eeg

import (
	"encoding/binary"

	"github.com/rickerevolte/eegsift/pkg/log"
)

// markerLookback is the number of bytes the device writes between the start
// of a marker record and its phrase: a little-endian uint32 sample index in
// the first four, followed by four bytes whose meaning is not understood.
// Recovered from hex dumps of device output; change only with evidence from
// more recordings.
const markerLookback = 8

// markerIndexWidth is the size of the sample index inside the lookback.
const markerIndexWidth = 4

// DefaultMarkerTokens are the marker phrases the reference device records
// during a standard resting-state protocol.
func DefaultMarkerTokens() []string {
	return []string{"Augen auf", "Augen zu", "HV Anfang", "HV Ende", "IGNORED"}
}

// ScanConfig holds the parameters for marker extraction.
type ScanConfig struct {
	// Tokens is the fixed set of literal marker phrases to search for.
	Tokens []string

	// SamplingRate converts recovered sample indices to onset seconds.
	SamplingRate float64
}

// ScanMarkers searches tail (the trailing bytes of a recording) for every
// non-overlapping occurrence of the configured marker phrases, left to
// right, and recovers each occurrence's sample index from the bytes
// immediately preceding the match.
//
// The device stores the index as a little-endian uint32 in the first four
// of the eight bytes before the phrase. A match with fewer than four
// preceding bytes has no index to recover and is skipped with a
// diagnostic. Markers come back in increasing byte-position order, which
// for well-formed recordings is increasing onset order.
func ScanMarkers(tail []byte, cfg ScanConfig, logger log.Logger) []Marker {
	var markers []Marker

	for p := 0; p < len(tail); {
		token := matchTokenAt(tail, p, cfg.Tokens)
		if token == "" {
			p++
			continue
		}

		start := p - markerLookback
		if start < 0 {
			start = 0
		}
		prefix := tail[start:p]
		if len(prefix) < markerIndexWidth {
			logger.Debug("marker prefix truncated, skipping occurrence",
				log.String("label", token),
				log.Int("tail_position", p))
			p += len(token)
			continue
		}

		index := binary.LittleEndian.Uint32(prefix[:markerIndexWidth])
		markers = append(markers, Marker{
			Onset: float64(index) / cfg.SamplingRate,
			Label: token,
		})
		p += len(token)
	}

	return markers
}

// matchTokenAt returns the first configured token that starts at position p,
// or "" if none does.
func matchTokenAt(tail []byte, p int, tokens []string) string {
	for _, tok := range tokens {
		if tok == "" || p+len(tok) > len(tail) {
			continue
		}
		if string(tail[p:p+len(tok)]) == tok {
			return tok
		}
	}
	return ""
}
