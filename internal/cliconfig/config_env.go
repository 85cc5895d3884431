package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RLCALC_*).
// It respects flags that have been explicitly set (changed map).
// A non-empty NO_COLOR disables colour unless RLCALC_COLOR or the flag says otherwise.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setFloatFromString("epsilon", os.Getenv(EnvPrefix+"EPSILON"), &cfg.Epsilon); err != nil {
		return err
	}
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	if os.Getenv("NO_COLOR") != "" && !changed["color"] {
		cfg.Color = false
	}
	s.setBoolFromString("color", os.Getenv(EnvPrefix+"COLOR"), &cfg.Color)
	s.setBoolFromString("clear", os.Getenv(EnvPrefix+"CLEAR_SCREEN"), &cfg.ClearScreen)
	s.setBoolFromString("watch-config", os.Getenv(EnvPrefix+"WATCH_CONFIG"), &cfg.WatchConfig)

	return nil
}
