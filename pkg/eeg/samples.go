package eeg

import "encoding/binary"

// DeviceScale converts raw sample counts to microvolts for the reference
// device. The value comes from its amplifier gain, not from the file.
const DeviceScale = 0.195

// DecodeConfig holds the parameters for sample matrix decoding.
type DecodeConfig struct {
	// ChannelCount is the fixed number of interleaved channels.
	ChannelCount int

	// SampleWidth is the width of one sample in bytes.
	SampleWidth int

	// Signed selects signed interpretation of the raw integers.
	Signed bool

	// Scale is the linear factor applied to each raw value.
	Scale float64
}

// DefaultDecodeConfig returns the decode parameters for the reference
// device layout: signed 16-bit little-endian samples scaled to microvolts.
func DefaultDecodeConfig(channelCount int) DecodeConfig {
	return DecodeConfig{
		ChannelCount: channelCount,
		SampleWidth:  2,
		Signed:       true,
		Scale:        DeviceScale,
	}
}

// DecodeSamples interprets data (the file contents after the header
// boundary) as a flat little-endian integer stream and de-interleaves it
// into a channel-major SignalBuffer. The stream stores one full cycle of
// per-channel samples at each time point; a trailing partial cycle is
// discarded, never padded.
//
// If fewer bytes remain than one full cycle, or SampleWidth is not one the
// device can emit, the returned buffer is empty. DecodeSamples never fails.
func DecodeSamples(data []byte, cfg DecodeConfig) *SignalBuffer {
	cycleBytes := cfg.ChannelCount * cfg.SampleWidth
	buf := &SignalBuffer{Channels: make([][]float64, cfg.ChannelCount)}

	if cycleBytes <= 0 || len(data) < cycleBytes || !supportedWidth(cfg.SampleWidth) {
		for c := range buf.Channels {
			buf.Channels[c] = []float64{}
		}
		return buf
	}

	sampleCount := len(data) / cycleBytes
	for c := range buf.Channels {
		buf.Channels[c] = make([]float64, sampleCount)
	}

	for i := 0; i < sampleCount; i++ {
		cycle := data[i*cycleBytes:]
		for c := 0; c < cfg.ChannelCount; c++ {
			raw := decodeSample(cycle[c*cfg.SampleWidth:], cfg.SampleWidth, cfg.Signed)
			buf.Channels[c][i] = float64(raw) * cfg.Scale
		}
	}
	return buf
}

// supportedWidth reports whether w is a sample width decodeSample handles.
func supportedWidth(w int) bool {
	return w == 1 || w == 2 || w == 4
}

func decodeSample(b []byte, width int, signed bool) int64 {
	switch width {
	case 1:
		if signed {
			return int64(int8(b[0]))
		}
		return int64(b[0])
	case 2:
		v := binary.LittleEndian.Uint16(b)
		if signed {
			return int64(int16(v))
		}
		return int64(v)
	case 4:
		v := binary.LittleEndian.Uint32(b)
		if signed {
			return int64(int32(v))
		}
		return int64(v)
	default:
		// Unreachable; DecodeSamples rejects other widths up front.
		return 0
	}
}
