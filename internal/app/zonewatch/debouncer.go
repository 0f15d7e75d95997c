package zonewatch

import (
	"sort"
	"sync"
	"time"
)

// Debouncer coalesces bursts of file events into a single callback once they settle
type Debouncer interface {
	Trigger(name string)
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	quiet    time.Duration
	callback func(names []string)
	timer    *time.Timer
	names    map[string]struct{}
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a Debouncer that fires after quiet has passed without a trigger
func NewDebouncer(quiet time.Duration, callback func(names []string)) Debouncer {
	return &debouncer{
		quiet:    quiet,
		callback: callback,
		names:    make(map[string]struct{}),
	}
}

// Trigger records a changed name and restarts the quiet period
func (d *debouncer) Trigger(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.names[name] = struct{}{}

	if d.timer == nil {
		d.timer = time.AfterFunc(d.quiet, d.fire)
		return
	}

	d.timer.Reset(d.quiet)
}

// Stop cancels any pending callback; later triggers are ignored
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	clear(d.names)
}

func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped || len(d.names) == 0 {
		d.mu.Unlock()
		return
	}

	names := make([]string, 0, len(d.names))
	for n := range d.names {
		names = append(names, n)
	}

	clear(d.names)
	d.timer = nil

	d.mu.Unlock()

	sort.Strings(names)
	d.callback(names)
}
