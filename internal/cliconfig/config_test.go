package cliconfig

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/rlcalc/pkg/rlc"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Epsilon != rlc.DefaultEpsilon {
		t.Errorf("Epsilon = %v, want %v", cfg.Epsilon, rlc.DefaultEpsilon)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
	if !cfg.Color || !cfg.ClearScreen {
		t.Errorf("Color/ClearScreen = %v/%v, want true/true", cfg.Color, cfg.ClearScreen)
	}
	if cfg.WatchConfig {
		t.Error("WatchConfig = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErr    bool
		wantFormat string
	}{
		{name: "defaults", mutate: func(c *Config) {}, wantFormat: "text"},
		{name: "format normalized", mutate: func(c *Config) { c.Format = " JSON " }, wantFormat: "json"},
		{name: "yaml", mutate: func(c *Config) { c.Format = "yaml" }, wantFormat: "yaml"},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: true},
		{name: "zero epsilon", mutate: func(c *Config) { c.Epsilon = 0 }, wantErr: true},
		{name: "negative epsilon", mutate: func(c *Config) { c.Epsilon = -1e-9 }, wantErr: true},
		{name: "NaN epsilon", mutate: func(c *Config) { c.Epsilon = math.NaN() }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "chatty" }, wantErr: true},
		{name: "log level normalized", mutate: func(c *Config) { c.LogLevel = "DEBUG" }, wantFormat: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", cfg.Format, tt.wantFormat)
			}
		})
	}
}

func TestConfig_Display(t *testing.T) {
	cfg := Config{Format: "yaml", Color: false, ClearScreen: true, LogLevel: "info"}
	want := Display{Format: "yaml", Color: false, ClearScreen: true}
	if got := cfg.Display(); got != want {
		t.Errorf("Display() = %+v, want %+v", got, want)
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv(EnvPrefix+"FORMAT", "")
	t.Setenv(EnvPrefix+"EPSILON", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("format = \"yaml\"\nepsilon = 1e-9\ncolor = false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	flags := DefaultConfig()
	flags.Epsilon = 1e-6
	changed := map[string]bool{"epsilon": true}

	cfg, err := Resolve(path, flags, changed)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Format = %v, want yaml (file)", cfg.Format)
	}
	if cfg.Epsilon != 1e-6 {
		t.Errorf("Epsilon = %v, want 1e-6 (flag wins)", cfg.Epsilon)
	}
	if cfg.Color {
		t.Error("Color = true, want false (file)")
	}
	if flags.Format != "text" {
		t.Errorf("Resolve mutated its flags argument: Format = %v", flags.Format)
	}
}

func TestResolve_MissingFileUsesFlags(t *testing.T) {
	t.Setenv(EnvPrefix+"FORMAT", "")
	cfg, err := Resolve(filepath.Join(t.TempDir(), "absent.toml"), DefaultConfig(), map[string]bool{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestResolve_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("epsilon = -1.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(path, DefaultConfig(), map[string]bool{}); err == nil {
		t.Error("Resolve() expected error for negative epsilon")
	}

	if err := os.WriteFile(path, []byte("this is not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(path, DefaultConfig(), map[string]bool{}); err == nil {
		t.Error("Resolve() expected error for invalid TOML")
	}
}
