package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.ChannelNames) != 19 {
		t.Fatalf("expected 19 reference channels, got %d", len(cfg.ChannelNames))
	}
	if cfg.SamplingRate != 256.0 {
		t.Fatalf("expected 256 Hz, got %v", cfg.SamplingRate)
	}
	if cfg.TailBytes != 8192 {
		t.Fatalf("expected 8192 tail bytes, got %d", cfg.TailBytes)
	}
	if cfg.Scale != 0.195 {
		t.Fatalf("expected device scale 0.195, got %v", cfg.Scale)
	}
	if len(cfg.Tokens) != 5 {
		t.Fatalf("expected 5 marker tokens, got %d", len(cfg.Tokens))
	}
	if cfg.EpochTMin >= cfg.EpochTMax {
		t.Fatalf("epoch window is inverted: [%v, %v]", cfg.EpochTMin, cfg.EpochTMax)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.File = "demo.EEG"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid with file", mutate: func(c *Config) {}},
		{name: "valid with watch dir", mutate: func(c *Config) {
			c.File = ""
			c.WatchDir = "/recordings"
		}},
		{name: "no input", mutate: func(c *Config) { c.File = "" }, wantErr: true},
		{name: "no channels", mutate: func(c *Config) { c.ChannelNames = nil }, wantErr: true},
		{name: "zero rate", mutate: func(c *Config) { c.SamplingRate = 0 }, wantErr: true},
		{name: "bad sample width", mutate: func(c *Config) { c.SampleWidth = 3 }, wantErr: true},
		{name: "zero step", mutate: func(c *Config) { c.Step = 0 }, wantErr: true},
		{name: "scan range inverted", mutate: func(c *Config) { c.MaxScan = c.MinOffset - 1 }, wantErr: true},
		{name: "zero tail", mutate: func(c *Config) { c.TailBytes = 0 }, wantErr: true},
		{name: "no tokens", mutate: func(c *Config) { c.Tokens = nil }, wantErr: true},
		{name: "epoch window inverted", mutate: func(c *Config) { c.EpochTMax = c.EpochTMin }, wantErr: true},
		{name: "zero debounce", mutate: func(c *Config) { c.Debounce = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSetterRespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SamplingRate = 512.0 // pretend --sampling-rate was passed

	s := newConfigSetter(map[string]bool{"sampling-rate": true})
	s.setFloat("sampling-rate", 128.0, &cfg.SamplingRate)

	if cfg.SamplingRate != 512.0 {
		t.Fatalf("changed flag should win, got %v", cfg.SamplingRate)
	}
}

func TestConfigSetterDuration(t *testing.T) {
	var d time.Duration
	s := newConfigSetter(map[string]bool{})

	if err := s.setDuration("debounce", "250ms", &d); err != nil {
		t.Fatalf("setDuration: %v", err)
	}
	if d != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", d)
	}

	if err := s.setDuration("debounce", "not-a-duration", &d); err == nil {
		t.Fatal("expected parse error")
	}
}
