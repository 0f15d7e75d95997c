package host

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/fx"

	"termface/internal/app/bus"
	"termface/internal/app/errors"
	"termface/internal/app/lifecycle"
	"termface/internal/app/looper"
	"termface/internal/app/report"
	"termface/internal/app/zonewatch"
	"termface/internal/config"
	"termface/internal/config/logger"
)

// StartOptions controls the initial face state
type StartOptions struct {
	Ambient bool
}

// Engine stands in for the watch platform: it owns the drawing looper and the
// framebuffer and delivers the face callbacks in platform order
type Engine interface {
	Start(ctx context.Context, opts StartOptions) error
	Stop()
	SetAmbient(ambient bool)
	SetVisible(visible bool)
	Ambient() bool
	Visible() bool
	Framebuffer() *Framebuffer
	Drawn() <-chan struct{}
}

// Params contains the engine's dependencies
type Params struct {
	fx.In

	Config     *config.Config
	Controller lifecycle.Controller
	Looper     looper.Looper
	Signal     *lifecycle.Signal
	Bus        bus.Bus
	Watcher    zonewatch.Watcher
	Reporter   report.Reporter
	Logger     logger.Logger
}

// engine implements the Engine interface
type engine struct {
	cfg        *config.Config
	controller lifecycle.Controller
	looper     looper.Looper
	repaint    *lifecycle.Signal
	drawn      *lifecycle.Signal
	fb         *Framebuffer
	bus        bus.Bus
	zones      zonewatch.Watcher
	reporter   report.Reporter
	log        logger.Logger

	ambient atomic.Bool
	visible atomic.Bool

	mu       sync.Mutex
	started  bool
	stopped  bool
	cancel   context.CancelFunc
	loops    sync.WaitGroup
	lastDraw time.Time
}

// NewEngine creates an engine sized from the surface configuration
func NewEngine(p Params) Engine {
	return &engine{
		cfg:        p.Config,
		controller: p.Controller,
		looper:     p.Looper,
		repaint:    p.Signal,
		drawn:      lifecycle.NewSignal(),
		fb:         NewFramebuffer(p.Config.Surface.Width, p.Config.Surface.Height),
		bus:        p.Bus,
		zones:      p.Watcher,
		reporter:   p.Reporter,
		log:        p.Logger.WithComponent(logger.ComponentHost),
	}
}

// Start runs the looper and dispatches create, surface size and visibility
func (e *engine) Start(ctx context.Context, opts StartOptions) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return nil
	}

	e.started = true
	ctx, e.cancel = context.WithCancel(ctx)
	e.mu.Unlock()

	go func() {
		if err := e.looper.Run(ctx); err != nil && ctx.Err() == nil {
			e.log.Error().Err(err).Msg("Looper exited")
		}
	}()

	width, height := e.fb.Size()

	steps := []func() error{
		e.controller.OnCreate,
		func() error { return e.controller.OnSurfaceChanged(width, height) },
	}

	for _, step := range steps {
		if err := e.call(step); err != nil {
			e.reporter.Capture(err)
			e.Stop()

			return err
		}
	}

	if opts.Ambient {
		e.SetAmbient(true)
	}

	e.SetVisible(true)

	if e.zones != nil {
		if err := e.zones.Start(ctx); err != nil {
			e.log.Warn().Err(err).Msg("Time zone changes will not be detected")
		}
	}

	e.loops.Add(2)

	go e.repaintLoop(ctx)
	go e.tickLoop(ctx)

	e.log.Info().Msgf("Face running on a %dx%d surface", width, height)

	return nil
}

// Stop hides and destroys the face, then stops every loop
func (e *engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}

	e.stopped = true
	e.mu.Unlock()

	_ = e.call(func() error {
		e.controller.OnVisibilityChanged(false)
		e.controller.OnDestroy()

		return nil
	})

	e.visible.Store(false)

	e.cancel()
	e.looper.Quit()
	<-e.looper.Done()
	e.loops.Wait()

	if e.zones != nil {
		e.zones.Close()
	}

	if !e.reporter.Flush(config.ReportFlush) {
		e.log.Warn().Msg("Timed out flushing reports")
	}

	e.log.Info().Msgf("Face stopped after %d frames", e.fb.Frames())
}

func (e *engine) SetAmbient(ambient bool) {
	e.ambient.Store(ambient)
	e.looper.Post(func() { e.controller.OnAmbientModeChanged(ambient) })
}

func (e *engine) SetVisible(visible bool) {
	e.visible.Store(visible)
	e.looper.Post(func() { e.controller.OnVisibilityChanged(visible) })
}

func (e *engine) Ambient() bool { return e.ambient.Load() }
func (e *engine) Visible() bool { return e.visible.Load() }

func (e *engine) Framebuffer() *Framebuffer { return e.fb }

// Drawn is readable after at least one new frame landed in the framebuffer
func (e *engine) Drawn() <-chan struct{} { return e.drawn.C() }

// call runs fn on the looper and waits for its result
func (e *engine) call(fn func() error) error {
	result := make(chan error, 1)

	if !e.looper.Post(func() { result <- fn() }) {
		return errors.ErrLooperStopped
	}

	select {
	case err := <-result:
		return err
	case <-e.looper.Done():
		return errors.ErrLooperStopped
	}
}

// repaintLoop turns invalidations into paints on the looper, at most FPSCap per second
func (e *engine) repaintLoop(ctx context.Context) {
	defer e.loops.Done()

	fps := e.cfg.Host.FPSCap
	if fps <= 0 {
		fps = config.DefaultFPSCap
	}

	minInterval := time.Second / time.Duration(fps)

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.repaint.C():
		}

		if wait := minInterval - time.Since(e.lastDraw); wait > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}

		e.lastDraw = time.Now()
		e.looper.Post(e.draw)
	}
}

func (e *engine) draw() {
	if err := e.fb.Paint(e.controller.OnDraw); err != nil {
		e.log.Debug().Err(err).Msg("Skipped repaint")
		return
	}

	e.drawn.Invalidate()
}

// tickLoop delivers a time tick on every minute boundary
func (e *engine) tickLoop(ctx context.Context) {
	defer e.loops.Done()

	timer := time.NewTimer(untilNextTick(time.Now(), config.TimeTickInterval))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			e.looper.Post(e.controller.OnTimeTick)
			e.bus.Publish(bus.Message{Type: bus.EventTimeTick})

			timer.Reset(untilNextTick(time.Now(), config.TimeTickInterval))
		}
	}
}

// untilNextTick is the time left until the next multiple of interval
func untilNextTick(now time.Time, interval time.Duration) time.Duration {
	return now.Truncate(interval).Add(interval).Sub(now)
}
