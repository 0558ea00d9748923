package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		changed map[string]bool
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}{
		{
			name: "applies valid env vars",
			envVars: map[string]string{
				"EEGSIFT_FILE":          "/env/session.EEG",
				"EEGSIFT_SAMPLING_RATE": "500",
				"EEGSIFT_TAIL_BYTES":    "16384",
				"EEGSIFT_CHANNELS":      "Cz, Pz ,Fz",
				"EEGSIFT_DEBOUNCE":      "2s",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.File != "/env/session.EEG" {
					t.Fatalf("file: got %q", cfg.File)
				}
				if cfg.SamplingRate != 500 {
					t.Fatalf("rate: got %v", cfg.SamplingRate)
				}
				if cfg.TailBytes != 16384 {
					t.Fatalf("tail: got %d", cfg.TailBytes)
				}
				if len(cfg.ChannelNames) != 3 || cfg.ChannelNames[1] != "Pz" {
					t.Fatalf("channels: got %v", cfg.ChannelNames)
				}
				if cfg.Debounce != 2*time.Second {
					t.Fatalf("debounce: got %v", cfg.Debounce)
				}
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"EEGSIFT_FILE": "/env/session.EEG",
			},
			changed: map[string]bool{"file": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.File != "" {
					t.Fatalf("changed flag should block env, got %q", cfg.File)
				}
			},
		},
		{
			name: "invalid float",
			envVars: map[string]string{
				"EEGSIFT_SAMPLING_RATE": "not-a-number",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "invalid int",
			envVars: map[string]string{
				"EEGSIFT_TAIL_BYTES": "many",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "invalid duration",
			envVars: map[string]string{
				"EEGSIFT_DEBOUNCE": "soon",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			var cfg Config
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
