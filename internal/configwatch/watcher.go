// Package configwatch reloads the rlcalc config file when it changes on disk.
package configwatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/rlcalc/internal/cliconfig"
	"github.com/bft-labs/rlcalc/pkg/log"
)

// DefaultDebounce is the delay after the last change before reloading.
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors one config file and publishes every valid reload.
type Watcher struct {
	path     string
	flags    cliconfig.Config
	changed  map[string]bool
	onChange func(cliconfig.Config)

	logger        log.Logger
	debounceDelay time.Duration

	ready     chan struct{}
	readyOnce sync.Once

	mu       sync.Mutex
	debounce *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the watcher logger. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// WithDebounce sets the reload delay. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounceDelay = d
		}
	}
}

// New creates a Watcher for path. Every reload resolves the file and the
// environment over flags, honouring changed exactly like the first load.
// onChange runs on a timer goroutine and receives only validated configs.
func New(path string, flags cliconfig.Config, changed map[string]bool, onChange func(cliconfig.Config), opts ...Option) *Watcher {
	w := &Watcher{
		path:          path,
		flags:         flags,
		changed:       changed,
		onChange:      onChange,
		logger:        log.NewNoopLogger(),
		debounceDelay: DefaultDebounce,
		ready:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Ready is closed once the watch is established.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches the directory holding the config file until ctx is done.
// The directory is watched rather than the file so that editors which
// replace the file on save keep triggering reloads.
func (w *Watcher) Run(ctx context.Context) error {
	if w.path == "" {
		return errors.New("configwatch: no config path")
	}
	dir := filepath.Dir(w.path)
	name := filepath.Base(w.path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("configwatch: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("configwatch: watch %s: %w", dir, err)
	}
	w.readyOnce.Do(func() { close(w.ready) })
	w.logger.Info("watching config file", log.String("path", w.path))

	defer w.stopDebounce()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		w.reload()
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

// reload keeps the previous settings when the new file does not validate.
func (w *Watcher) reload() {
	cfg, err := cliconfig.Resolve(w.path, w.flags, w.changed)
	if err != nil {
		w.logger.Warn("ignoring invalid config change", log.String("path", w.path), log.Err(err))
		return
	}
	w.logger.Info("config reloaded",
		log.String("path", w.path),
		log.String("format", cfg.Format),
		log.Bool("color", cfg.Color),
		log.Bool("clear_screen", cfg.ClearScreen),
	)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
