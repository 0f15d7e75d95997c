package zonewatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"termface/internal/app/bus"
	"termface/internal/config"
	"termface/internal/config/logger"
)

// zoneFiles are the names that carry the system zone next to the localtime file
var zoneFiles = []string{"timezone", "TZ"}

// Watcher publishes EventTimeZoneChanged when the system zone files change
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

// watcher implements the Watcher interface
type watcher struct {
	localtime string
	bus       bus.Bus
	fsWatcher *fsnotify.Watcher
	matcher   Matcher
	debouncer Debouncer
	log       logger.Logger
	mu        sync.Mutex
	started   bool
	closed    bool
}

// NewWatcher creates a Watcher for the configured localtime file
func NewWatcher(cfg *config.Config, b bus.Bus, log logger.Logger) (Watcher, error) {
	localtime := cfg.Clock.Localtime
	if localtime == "" {
		localtime = config.DefaultLocaltime
	}

	m, err := NewMatcher(append([]string{filepath.Base(localtime)}, zoneFiles...)...)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		localtime: localtime,
		bus:       b,
		fsWatcher: fsw,
		matcher:   m,
		log:       log.WithComponent(logger.ComponentZoneWatch),
	}

	w.debouncer = NewDebouncer(config.ZoneDebounce, w.emit)

	return w, nil
}

// Start watches the directory holding the localtime file until ctx is done
func (w *watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.started {
		return nil
	}

	dir := filepath.Dir(w.localtime)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.started = true

	go w.processEvents(ctx)

	w.log.Info().Msgf("Watching '%s' for time zone changes", w.localtime)

	return nil
}

// Close stops watching and drops any pending notification
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	w.debouncer.Stop()
	w.fsWatcher.Close()
}

func (w *watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if isRelevantEvent(event) && w.matcher.Match(event.Name) {
				w.debouncer.Trigger(filepath.Base(event.Name))
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *watcher) emit(names []string) {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}

	zone := zoneName(w.localtime)
	w.log.Info().Msgf("Zone files changed %v, now '%s'", names, zone)

	w.bus.Publish(bus.Message{
		Type:     bus.EventTimeZoneChanged,
		Data:     bus.TimeZoneChanged{Zone: zone},
		Critical: true,
	})
}

// zoneName derives an IANA name from the localtime symlink target, "Local" when it is not one
func zoneName(localtime string) string {
	target, err := os.Readlink(localtime)
	if err != nil {
		return "Local"
	}

	if i := strings.LastIndex(target, "zoneinfo/"); i >= 0 {
		return target[i+len("zoneinfo/"):]
	}

	return "Local"
}

// isRelevantEvent returns true for events that can replace the zone files
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
