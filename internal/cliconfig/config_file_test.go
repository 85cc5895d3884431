package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				Epsilon:     1e-9,
				Format:      "json",
				Color:       &falseVal,
				ClearScreen: &falseVal,
				LogLevel:    "debug",
				WatchConfig: &trueVal,
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Epsilon:     1e-9,
				Format:      "json",
				Color:       false,
				ClearScreen: false,
				LogLevel:    "debug",
				WatchConfig: true,
			},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{Format: "yaml", Color: &falseVal},
			changed:    map[string]bool{"format": true, "color": true},
			initial:    Config{Format: "json", Color: true},
			expected:   Config{Format: "json", Color: true},
		},
		{
			name:       "absent keys leave values alone",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "negative epsilon is kept for validation",
			fileConfig: FileConfig{Epsilon: -2},
			changed:    map[string]bool{},
			initial:    Config{Epsilon: 1},
			expected:   Config{Epsilon: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			if err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
epsilon = 1e-12
format = "yaml"
color = false
clear_screen = true
log_level = "info"
watch_config = true
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Epsilon != 1e-12 {
		t.Errorf("Epsilon = %v, want 1e-12", fc.Epsilon)
	}
	if fc.Format != "yaml" {
		t.Errorf("Format = %v, want yaml", fc.Format)
	}
	if fc.Color == nil || *fc.Color {
		t.Errorf("Color = %v, want false", fc.Color)
	}
	if fc.ClearScreen == nil || !*fc.ClearScreen {
		t.Errorf("ClearScreen = %v, want true", fc.ClearScreen)
	}
	if fc.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", fc.LogLevel)
	}
	if fc.WatchConfig == nil || !*fc.WatchConfig {
		t.Errorf("WatchConfig = %v, want true", fc.WatchConfig)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	if _, err := LoadFileConfig("/nonexistent/path/config.toml"); err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")
	if err := os.WriteFile(configPath, []byte("format = \"text\"\nthis is not valid toml\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" && !strings.Contains(path, ".rlcalc") {
		t.Errorf("DefaultConfigPath() = %v, should contain .rlcalc", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
