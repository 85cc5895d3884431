package session

import (
	"sync"

	"github.com/bft-labs/rlcalc/internal/report"
)

// Settings are the display choices applied to one analysis cycle.
type Settings struct {
	Renderer    report.Renderer
	ClearScreen bool
}

// SettingsSource yields the settings for the next cycle.
type SettingsSource interface {
	Current() Settings
}

// StaticSettings never changes.
type StaticSettings Settings

// Current returns s.
func (s StaticSettings) Current() Settings {
	return Settings(s)
}

// SettingsHolder is a SettingsSource that can be updated concurrently,
// e.g. by a config watcher.
type SettingsHolder struct {
	mu sync.RWMutex
	s  Settings
}

// NewSettingsHolder creates a holder with initial settings.
func NewSettingsHolder(initial Settings) *SettingsHolder {
	return &SettingsHolder{s: initial}
}

// Current returns the latest settings.
func (h *SettingsHolder) Current() Settings {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.s
}

// Set replaces the settings used from the next cycle on.
func (h *SettingsHolder) Set(s Settings) {
	h.mu.Lock()
	h.s = s
	h.mu.Unlock()
}
