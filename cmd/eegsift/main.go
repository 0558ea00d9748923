package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/rickerevolte/eegsift"
	"github.com/rickerevolte/eegsift/internal/cliconfig"
	"github.com/rickerevolte/eegsift/pkg/log"
)

const helpDescription = `
Recover signal data and event markers from proprietary EEG recordings.

The device writes an undocumented header of unknown length, channel-
interleaved binary samples, and a marker block at the file tail. eegsift
locates the header/data boundary heuristically, decodes the sample matrix,
extracts the markers with their sample indices, and prints a summary of the
recovered recording.

Highlights:
  - No format declaration needed; the boundary is found statistically.
  - Recoverable anomalies are excluded and logged, never fatal.
  - Watch mode processes recordings as the device drops them.
`

var exampleUsage = strings.TrimSpace(`
  eegsift --file ./session.EEG
  eegsift --file ./session.EEG --sampling-rate 512 --tail-bytes 16384
  eegsift --watch-dir /data/acquisition
  eegsift --config $HOME/.eegsift/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter()

	root := &cobra.Command{
		Use:     "eegsift",
		Short:   "Recover signals and markers from proprietary EEG recordings",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Layering: config file, then environment, then flags.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return eegsift.Run(ctx, cfg, logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.eegsift/config.toml)")
	root.Flags().StringVar(&cfg.File, "file", cfg.File, "recording file to process")
	root.Flags().StringVar(&cfg.WatchDir, "watch-dir", cfg.WatchDir, "process recordings appearing in this directory")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "settle delay before processing a changed recording")

	root.Flags().StringSliceVar(&cfg.ChannelNames, "channels", cfg.ChannelNames, "channel names in stream order")
	root.Flags().Float64Var(&cfg.SamplingRate, "sampling-rate", cfg.SamplingRate, "acquisition rate in Hz")

	root.Flags().IntVar(&cfg.MinOffset, "min-offset", cfg.MinOffset, "first candidate byte for the boundary scan")
	root.Flags().IntVar(&cfg.MaxScan, "max-scan", cfg.MaxScan, "how many leading bytes the boundary scan may read")
	root.Flags().IntVar(&cfg.WindowSize, "window-size", cfg.WindowSize, "classification window size in bytes")
	root.Flags().IntVar(&cfg.Step, "step", cfg.Step, "boundary scan step in bytes")
	root.Flags().Float64Var(&cfg.PrintableThreshold, "printable-threshold", cfg.PrintableThreshold, "printable fraction below which a window is binary-like")
	root.Flags().Float64Var(&cfg.StddevThreshold, "stddev-threshold", cfg.StddevThreshold, "byte stddev above which a window is binary-like")
	root.Flags().IntVar(&cfg.DefaultOffset, "default-offset", cfg.DefaultOffset, "offset used when no boundary is found")

	root.Flags().IntVar(&cfg.SampleWidth, "sample-width", cfg.SampleWidth, "sample width in bytes")
	root.Flags().Float64Var(&cfg.Scale, "scale", cfg.Scale, "linear factor from raw counts to physical units")

	root.Flags().IntVar(&cfg.TailBytes, "tail-bytes", cfg.TailBytes, "trailing bytes scanned for markers")
	root.Flags().StringSliceVar(&cfg.Tokens, "tokens", cfg.Tokens, "marker phrases to search for")

	root.Flags().Float64Var(&cfg.EpochTMin, "epoch-tmin", cfg.EpochTMin, "epoch window start in seconds relative to each event")
	root.Flags().Float64Var(&cfg.EpochTMax, "epoch-tmax", cfg.EpochTMax, "epoch window end in seconds relative to each event")

	if err := root.Execute(); err != nil {
		logger.Error("eegsift", log.Err(err))
		os.Exit(1)
	}
}
