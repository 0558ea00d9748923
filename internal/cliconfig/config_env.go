package cliconfig

import "os"

// ApplyEnvConfig applies configuration from EEGSIFT_* environment
// variables. File config is applied first, env second, explicit flags win
// over both (via the changed map). Returns an error for unparseable
// values.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("EEGSIFT_FILE"), &cfg.File)
	s.setString("watch-dir", os.Getenv("EEGSIFT_WATCH_DIR"), &cfg.WatchDir)
	if err := s.setDuration("debounce", os.Getenv("EEGSIFT_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setStringsFromCSV("channels", os.Getenv("EEGSIFT_CHANNELS"), &cfg.ChannelNames)
	if err := s.setFloatFromString("sampling-rate", os.Getenv("EEGSIFT_SAMPLING_RATE"), &cfg.SamplingRate); err != nil {
		return err
	}

	if err := s.setIntFromString("min-offset", os.Getenv("EEGSIFT_MIN_OFFSET"), &cfg.MinOffset); err != nil {
		return err
	}
	if err := s.setIntFromString("max-scan", os.Getenv("EEGSIFT_MAX_SCAN"), &cfg.MaxScan); err != nil {
		return err
	}
	if err := s.setFloatFromString("scale", os.Getenv("EEGSIFT_SCALE"), &cfg.Scale); err != nil {
		return err
	}
	if err := s.setIntFromString("tail-bytes", os.Getenv("EEGSIFT_TAIL_BYTES"), &cfg.TailBytes); err != nil {
		return err
	}
	s.setStringsFromCSV("tokens", os.Getenv("EEGSIFT_TOKENS"), &cfg.Tokens)

	return nil
}
