package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/fx"

	"termface/internal/app/bus"
	"termface/internal/app/clock"
	"termface/internal/app/compositor"
	"termface/internal/app/errors"
	"termface/internal/app/looper"
	"termface/internal/app/report"
	"termface/internal/app/surface"
	"termface/internal/config"
	"termface/internal/config/logger"
)

// UpdateTimeTag tags the self-timer messages on the looper
const UpdateTimeTag = "update_time"

// FSM states
const (
	Idle      = string(bus.PhaseIdle)
	Created   = string(bus.PhaseCreated)
	Sized     = string(bus.PhaseSized)
	Destroyed = string(bus.PhaseDestroyed)
)

// FSM events
const (
	Create  = "create"
	Size    = "size"
	Destroy = "destroy"
)

// Controller receives the host callbacks of one face engine.
// Every method must be called from the looper goroutine.
type Controller interface {
	OnCreate() error
	OnSurfaceChanged(width, height int) error
	OnVisibilityChanged(visible bool)
	OnAmbientModeChanged(ambient bool)
	OnTimeTick()
	OnTimeZoneChanged()
	OnDraw(canvas surface.Canvas) error
	OnDestroy()
	Phase() string
	Visible() bool
	Ambient() bool
}

// Params contains the controller's dependencies
type Params struct {
	fx.In

	Config      *config.Config
	Compositor  compositor.Compositor
	Looper      looper.Looper
	Source      clock.Source
	Bus         bus.Bus
	Invalidator Invalidator
	Reporter    report.Reporter
	Logger      logger.Logger
}

// controller implements the Controller interface
type controller struct {
	cfg         *config.Config
	compositor  compositor.Compositor
	looper      looper.Looper
	source      clock.Source
	bus         bus.Bus
	invalidator Invalidator
	reporter    report.Reporter
	log         logger.Logger

	phase    *fsm.FSM
	calendar *clock.Calendar

	visible bool
	ambient bool

	registered     bool
	stopListening  context.CancelFunc
	updateInterval time.Duration
}

// NewController creates a controller in the idle phase
func NewController(p Params) Controller {
	c := &controller{
		cfg:            p.Config,
		compositor:     p.Compositor,
		looper:         p.Looper,
		source:         p.Source,
		bus:            p.Bus,
		invalidator:    p.Invalidator,
		reporter:       p.Reporter,
		log:            p.Logger.WithComponent(logger.ComponentLifecycle),
		updateInterval: config.InteractiveUpdateRate,
	}

	c.phase = c.newPhaseFSM()

	return c
}

func (c *controller) newPhaseFSM() *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Create, Src: []string{Idle}, Dst: Created},
			{Name: Size, Src: []string{Created, Sized}, Dst: Sized},
			{Name: Destroy, Src: []string{Idle, Created, Sized}, Dst: Destroyed},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				if e.Src == e.Dst {
					return
				}

				c.log.Debug().Msgf("PHASE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
				c.bus.Publish(bus.Message{
					Type:     bus.EventPhaseChanged,
					Data:     bus.PhaseChanged{Phase: bus.Phase(e.Dst)},
					Critical: true,
				})
			},
		},
	)
}

// OnCreate loads assets, initializes paints and binds a calendar to the default zone
func (c *controller) OnCreate() error {
	if err := c.transition(Create); err != nil {
		return err
	}

	if err := c.compositor.Create(); err != nil {
		return fmt.Errorf("create face: %w", err)
	}

	c.calendar = clock.NewCalendar(c.source.DefaultZone())

	c.log.Info().Msgf("Face created in zone '%s'", c.calendar.Zone())

	return nil
}

// OnSurfaceChanged recomputes geometry and metrics, resetting the animation
func (c *controller) OnSurfaceChanged(width, height int) error {
	if c.phase.Is(Destroyed) {
		return errors.ErrEngineDestroyed
	}

	if c.phase.Is(Idle) {
		return errors.ErrSurfaceNotReady
	}

	if err := c.compositor.Resize(width, height); err != nil {
		return err
	}

	if err := c.transition(Size); err != nil {
		return err
	}

	c.bus.Publish(bus.Message{Type: bus.EventSurfaceChanged, Data: bus.SurfaceChanged{Width: width, Height: height}})
	c.invalidator.Invalidate()

	return nil
}

// OnVisibilityChanged registers the zone listener while visible and re-evaluates the timer
func (c *controller) OnVisibilityChanged(visible bool) {
	if c.phase.Is(Destroyed) {
		return
	}

	c.visible = visible

	if visible {
		c.register()

		if c.calendar != nil {
			c.calendar.SetTimeZone(c.source.DefaultZone())
		}

		c.invalidator.Invalidate()
	} else {
		c.unregister()
	}

	c.bus.Publish(bus.Message{Type: bus.EventVisibilityChanged, Data: bus.VisibilityChanged{Visible: visible}})

	c.updateTimer()
}

// OnAmbientModeChanged repaints only on an actual change, the timer is re-evaluated regardless
func (c *controller) OnAmbientModeChanged(ambient bool) {
	if c.phase.Is(Destroyed) {
		return
	}

	if c.ambient != ambient {
		c.ambient = ambient
		c.compositor.SetAmbient(ambient, c.cfg.Surface.LowBitAmbient)
		c.invalidator.Invalidate()

		c.bus.Publish(bus.Message{Type: bus.EventAmbientChanged, Data: bus.AmbientChanged{Ambient: ambient}})
	}

	c.updateTimer()
}

// OnTimeTick repaints once; delivered by the host every minute in every mode
func (c *controller) OnTimeTick() {
	if c.phase.Is(Destroyed) {
		return
	}

	c.invalidator.Invalidate()
}

// OnTimeZoneChanged rebinds the calendar to the current default zone while the listener is registered
func (c *controller) OnTimeZoneChanged() {
	if c.phase.Is(Destroyed) || c.calendar == nil || !c.registered {
		return
	}

	c.calendar.SetTimeZone(c.source.DefaultZone())
	c.log.Info().Msgf("Time zone changed to '%s'", c.calendar.Zone())

	c.invalidator.Invalidate()
}

// OnDraw paints one frame; paint failures are reported and never returned
func (c *controller) OnDraw(canvas surface.Canvas) error {
	switch {
	case c.phase.Is(Destroyed):
		return errors.ErrEngineDestroyed
	case !c.phase.Is(Sized):
		return errors.ErrSurfaceNotReady
	}

	start := time.Now()

	if err := c.compositor.Draw(canvas, c.calendar); err != nil {
		c.log.Warn().Err(err).Msg("Frame painted with errors")
		c.reporter.Capture(err)
		c.bus.Publish(bus.Message{Type: bus.EventDrawFailed, Data: bus.DrawFailed{Error: err}})
	}

	c.bus.Publish(bus.Message{
		Type: bus.EventFrameDrawn,
		Data: bus.FrameDrawn{
			Lines:    compositor.ConsoleLines(c.calendar),
			Rows:     compositor.BinaryRows(c.calendar),
			Ambient:  c.ambient,
			Duration: time.Since(start),
		},
	})

	return nil
}

// OnDestroy cancels the timer and the zone listener; later callbacks are ignored
func (c *controller) OnDestroy() {
	if c.phase.Is(Destroyed) {
		return
	}

	c.looper.RemoveMessages(UpdateTimeTag)
	c.unregister()
	c.visible = false

	if err := c.transition(Destroy); err != nil {
		c.log.Warn().Err(err).Msg("Failed to enter destroyed phase")
	}

	c.log.Info().Msg("Face destroyed")
}

// Phase returns the current surface phase
func (c *controller) Phase() string {
	return c.phase.Current()
}

func (c *controller) Visible() bool {
	return c.visible
}

func (c *controller) Ambient() bool {
	return c.ambient
}

func (c *controller) transition(event string) error {
	err := c.phase.Event(context.Background(), event)
	if err == nil {
		return nil
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}

	if c.phase.Is(Destroyed) {
		return errors.ErrEngineDestroyed
	}

	return fmt.Errorf("%w: %s in phase %s: %v", errors.ErrSurfaceNotReady, event, c.phase.Current(), err)
}

func (c *controller) shouldTimerBeRunning() bool {
	return c.visible && !c.ambient && !c.phase.Is(Destroyed)
}

// updateTimer restarts the self-timer so it fires immediately when it should run
func (c *controller) updateTimer() {
	c.looper.RemoveMessages(UpdateTimeTag)

	if c.shouldTimerBeRunning() {
		c.looper.PostDelayed(UpdateTimeTag, 0, c.handleUpdateTime)
	}
}

// handleUpdateTime repaints and re-arms for the next whole second
func (c *controller) handleUpdateTime() {
	c.invalidator.Invalidate()

	if !c.shouldTimerBeRunning() {
		return
	}

	rate := c.updateInterval.Milliseconds()
	delay := rate - c.source.NowMillis()%rate

	c.looper.PostDelayed(UpdateTimeTag, time.Duration(delay)*time.Millisecond, c.handleUpdateTime)
}

// register subscribes to zone changes and forwards them onto the looper
func (c *controller) register() {
	if c.registered {
		return
	}

	c.registered = true

	ctx, cancel := context.WithCancel(context.Background())
	c.stopListening = cancel

	ch := c.bus.Subscribe(ctx)

	go func() {
		for msg := range ch {
			if msg.Type == bus.EventTimeZoneChanged {
				c.looper.Post(c.OnTimeZoneChanged)
			}
		}
	}()

	c.log.Debug().Msg("Time zone listener registered")
}

func (c *controller) unregister() {
	if !c.registered {
		return
	}

	c.registered = false

	c.stopListening()
	c.stopListening = nil

	c.log.Debug().Msg("Time zone listener unregistered")
}
