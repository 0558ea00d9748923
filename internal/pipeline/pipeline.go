// Package pipeline orchestrates one full recovery run over a recording
// file: boundary detection, sample decoding, marker extraction, event
// encoding and aggregate validation, in that order, fully synchronous.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rickerevolte/eegsift/internal/domain"
	"github.com/rickerevolte/eegsift/internal/ports"
	"github.com/rickerevolte/eegsift/pkg/eeg"
)

// Config holds the per-run parameters of the pipeline.
type Config struct {
	// Path identifies the recording in diagnostics and the result.
	Path string

	// ChannelNames lists the interleaved channels in stream order.
	ChannelNames []string

	// SamplingRate is the acquisition rate in Hz.
	SamplingRate float64

	// Detect parameterizes the header/data boundary scan.
	Detect eeg.DetectConfig

	// SampleWidth and Scale parameterize sample decoding.
	SampleWidth int
	Scale       float64

	// TailBytes is how much of the file tail to scan for markers.
	TailBytes int

	// Tokens is the marker phrase set.
	Tokens []string
}

// Pipeline runs the recovery stages over one RecordingSource. The montage,
// aggregator and renderer collaborators are each optional; a nil
// collaborator skips its stage.
type Pipeline struct {
	cfg      Config
	src      ports.RecordingSource
	montage  ports.MontageLookup
	agg      ports.Aggregator
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a pipeline over the given source and collaborators.
func New(cfg Config, src ports.RecordingSource, montage ports.MontageLookup,
	agg ports.Aggregator, renderer ports.Renderer, logger ports.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		src:      src,
		montage:  montage,
		agg:      agg,
		renderer: renderer,
		logger:   logger,
	}
}

// Run executes the full pipeline and returns the recovered result. Only a
// read failure is fatal; every per-item anomaly is excluded with a
// diagnostic and processing continues. Rerunning on an unchanged source
// yields an identical result.
func (p *Pipeline) Run(ctx context.Context) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Head scan: only the first MaxScan bytes are needed.
	head, err := p.src.ReadHead(p.cfg.Detect.MaxScan)
	if err != nil {
		return nil, fmt.Errorf("read head: %w", err)
	}
	offset := eeg.DetectBoundary(head, p.cfg.Detect, p.logger)

	// Sample region: everything after the boundary.
	data, err := p.src.ReadFrom(int64(offset))
	if err != nil {
		return nil, fmt.Errorf("read sample region: %w", err)
	}
	buffer := eeg.DecodeSamples(data, eeg.DecodeConfig{
		ChannelCount: len(p.cfg.ChannelNames),
		SampleWidth:  p.cfg.SampleWidth,
		Signed:       true,
		Scale:        p.cfg.Scale,
	})
	if buffer.Empty() {
		p.logger.Warn("sample region is empty",
			ports.Int("offset", offset),
			ports.Int64("file_size", p.src.Size()))
	} else {
		p.logger.Info("samples decoded",
			ports.Int("channels", len(p.cfg.ChannelNames)),
			ports.Int("samples_per_channel", buffer.SampleCount()),
			ports.Float64("duration_s", buffer.Duration(p.cfg.SamplingRate)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Marker tail. A file shorter than the requested tail degrades to
	// scanning the whole file.
	if int64(p.cfg.TailBytes) > p.src.Size() {
		p.logger.Warn("requested tail exceeds file, scanning whole file",
			ports.Int("tail_bytes", p.cfg.TailBytes),
			ports.Int64("file_size", p.src.Size()),
			ports.Err(domain.ErrShortTail))
	}
	tail, err := p.src.ReadTail(p.cfg.TailBytes)
	if err != nil {
		return nil, fmt.Errorf("read tail: %w", err)
	}
	markers := eeg.ScanMarkers(tail, eeg.ScanConfig{
		Tokens:       p.cfg.Tokens,
		SamplingRate: p.cfg.SamplingRate,
	}, p.logger)

	// Markers outside the reconstructed signal are meaningless downstream.
	duration := buffer.Duration(p.cfg.SamplingRate)
	valid := markers[:0:0]
	for _, m := range markers {
		if m.Onset < 0 || m.Onset > duration {
			p.logger.Debug("marker outside signal range, dropping",
				ports.String("label", m.Label),
				ports.Float64("onset_s", m.Onset),
				ports.Float64("duration_s", duration))
			continue
		}
		valid = append(valid, m)
	}
	p.logger.Info("markers extracted",
		ports.Int("found", len(markers)),
		ports.Int("in_range", len(valid)))

	events, codes := eeg.EncodeEvents(valid, p.cfg.SamplingRate)

	result := &domain.Result{
		Path:         p.cfg.Path,
		Offset:       offset,
		ChannelNames: p.cfg.ChannelNames,
		SamplingRate: p.cfg.SamplingRate,
		Buffer:       buffer,
		Markers:      valid,
		Events:       events,
		Codes:        codes,
	}

	if p.montage != nil {
		result.Positions = p.montage.Positions(p.cfg.ChannelNames)
	}

	if p.agg != nil {
		raw := p.agg.Aggregate(buffer, events, codes)
		result.Aggregates = eeg.FilterAggregates(raw, p.logger)
	}

	if p.renderer != nil {
		if err := p.renderer.Render(ctx, result); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}

	return result, nil
}
