// Package eegsift recovers signal data, event markers and per-condition
// averages from the proprietary recording files of a clinical EEG device.
//
// Example usage, with log being this module's pkg/log:
//
//	cfg := eegsift.DefaultConfig()
//	cfg.File = "/data/session.EEG"
//	logger := log.NewZerologAdapter()
//	if err := eegsift.Run(context.Background(), cfg, logger); err != nil {
//	    logger.Error("run", log.Err(err))
//	    os.Exit(1)
//	}
//
// The codec itself lives in pkg/eeg and can be used without this facade.
package eegsift

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rickerevolte/eegsift/internal/adapters/fs"
	"github.com/rickerevolte/eegsift/internal/adapters/render"
	"github.com/rickerevolte/eegsift/internal/cliconfig"
	"github.com/rickerevolte/eegsift/internal/domain"
	"github.com/rickerevolte/eegsift/internal/epoch"
	"github.com/rickerevolte/eegsift/internal/montage"
	"github.com/rickerevolte/eegsift/internal/pipeline"
	"github.com/rickerevolte/eegsift/internal/watch"
	"github.com/rickerevolte/eegsift/pkg/eeg"
	"github.com/rickerevolte/eegsift/pkg/log"
)

// Config holds the full processing configuration.
// Use DefaultConfig() for the reference deployment values.
type Config = cliconfig.Config

// Result holds everything recovered from one recording.
type Result = domain.Result

// DefaultConfig returns a Config with the reference deployment values.
// At minimum, set File or WatchDir before calling Run.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Process runs the full recovery pipeline over one recording file, writing
// the summary to out and diagnostics to logger. Only an unreadable file is
// fatal.
func Process(ctx context.Context, cfg Config, path string, out io.Writer, logger log.Logger) (*Result, error) {
	src, err := fs.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	p := pipeline.New(pipeline.Config{
		Path:         path,
		ChannelNames: cfg.ChannelNames,
		SamplingRate: cfg.SamplingRate,
		Detect: eeg.DetectConfig{
			MinOffset:          cfg.MinOffset,
			MaxScan:            cfg.MaxScan,
			WindowSize:         cfg.WindowSize,
			Step:               cfg.Step,
			PrintableThreshold: cfg.PrintableThreshold,
			StddevThreshold:    cfg.StddevThreshold,
			DefaultOffset:      cfg.DefaultOffset,
		},
		SampleWidth: cfg.SampleWidth,
		Scale:       cfg.Scale,
		TailBytes:   cfg.TailBytes,
		Tokens:      cfg.Tokens,
	},
		src,
		montage.New(),
		epoch.NewAverager(cfg.SamplingRate, cfg.EpochTMin, cfg.EpochTMax),
		render.NewSummaryWriter(out),
		logger,
	)

	return p.Run(ctx)
}

// Run executes eegsift with the given configuration: a single recording
// when cfg.File is set, or a watch loop over cfg.WatchDir. Summaries go to
// stdout and diagnostics to logger.
func Run(ctx context.Context, cfg Config, logger log.Logger) error {
	if cfg.WatchDir != "" {
		w := watch.New(cfg.WatchDir, cfg.Debounce, func(ctx context.Context, path string) {
			if _, err := Process(ctx, cfg, path, os.Stdout, logger); err != nil {
				logger.Error("recording failed", log.String("path", path), log.Err(err))
			}
		}, logger)

		err := w.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	_, err := Process(ctx, cfg, cfg.File, os.Stdout, logger)
	return err
}
