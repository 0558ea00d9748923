package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
file = "/data/session1.EEG"
sampling_rate = 512.0
tail_bytes = 4096
channels = ["Cz", "Pz"]
tokens = ["Augen auf"]
epoch_tmin = -0.2
epoch_tmax = 0.8
debounce = "1s"
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}

	if cfg.File != "/data/session1.EEG" {
		t.Fatalf("file: got %q", cfg.File)
	}
	if cfg.SamplingRate != 512.0 {
		t.Fatalf("sampling rate: got %v", cfg.SamplingRate)
	}
	if cfg.TailBytes != 4096 {
		t.Fatalf("tail bytes: got %d", cfg.TailBytes)
	}
	if len(cfg.ChannelNames) != 2 || cfg.ChannelNames[0] != "Cz" {
		t.Fatalf("channels: got %v", cfg.ChannelNames)
	}
	if len(cfg.Tokens) != 1 {
		t.Fatalf("tokens: got %v", cfg.Tokens)
	}
	if cfg.EpochTMin != -0.2 || cfg.EpochTMax != 0.8 {
		t.Fatalf("epoch window: got [%v, %v]", cfg.EpochTMin, cfg.EpochTMax)
	}
	if cfg.Debounce != time.Second {
		t.Fatalf("debounce: got %v", cfg.Debounce)
	}
}

func TestApplyFileConfigKeepsDefaultsForUnsetFields(t *testing.T) {
	fc, err := LoadFileConfig(writeConfig(t, `file = "x.EEG"`))
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}

	def := DefaultConfig()
	if cfg.SamplingRate != def.SamplingRate || cfg.TailBytes != def.TailBytes {
		t.Fatal("unset file fields must not clobber defaults")
	}
	if cfg.EpochTMin != def.EpochTMin {
		t.Fatalf("unset epoch_tmin must keep default, got %v", cfg.EpochTMin)
	}
}

func TestApplyFileConfigRespectsFlags(t *testing.T) {
	fc, err := LoadFileConfig(writeConfig(t, `
file = "from-file.EEG"
sampling_rate = 512.0
`))
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := DefaultConfig()
	cfg.File = "from-flag.EEG"
	changed := map[string]bool{"file": true}

	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}

	if cfg.File != "from-flag.EEG" {
		t.Fatalf("flag must win over file config, got %q", cfg.File)
	}
	if cfg.SamplingRate != 512.0 {
		t.Fatalf("unflagged field should come from file, got %v", cfg.SamplingRate)
	}
}

func TestLoadFileConfigBadTOML(t *testing.T) {
	if _, err := LoadFileConfig(writeConfig(t, `file = [unterminated`)); err == nil {
		t.Fatal("expected TOML parse error")
	}
}
