package host

import (
	"context"
	"image"
	"time"

	"termface/internal/app/assets"
	"termface/internal/app/bus"
	"termface/internal/app/clock"
	"termface/internal/app/compositor"
	"termface/internal/app/lifecycle"
	"termface/internal/app/looper"
	"termface/internal/app/report"
	"termface/internal/config"
	"termface/internal/config/logger"
)

// RenderOnce paints a single frame for the instant at through the full face lifecycle
func RenderOnce(cfg *config.Config, loader assets.Loader, reporter report.Reporter, at time.Time, width, height int, log logger.Logger) (*image.RGBA, error) {
	sized := *cfg
	sized.Surface.Width = width
	sized.Surface.Height = height

	source := clock.NewSource(clock.Fixed{T: at}, &sized, log)
	lp := looper.NewLooper(log)
	signal := lifecycle.NewSignal()

	controller := lifecycle.NewController(lifecycle.Params{
		Config:      &sized,
		Compositor:  compositor.NewCompositor(loader, source, log),
		Looper:      lp,
		Source:      source,
		Bus:         bus.NoOp(),
		Invalidator: signal,
		Reporter:    reporter,
		Logger:      log,
	})

	e := &engine{
		cfg:        &sized,
		controller: controller,
		looper:     lp,
		repaint:    signal,
		drawn:      lifecycle.NewSignal(),
		fb:         NewFramebuffer(width, height),
		reporter:   reporter,
		log:        log.WithComponent(logger.ComponentRender),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = lp.Run(ctx) }()

	defer func() {
		lp.Quit()
		<-lp.Done()
	}()

	err := e.call(func() error {
		defer controller.OnDestroy()

		if err := controller.OnCreate(); err != nil {
			return err
		}

		if err := controller.OnSurfaceChanged(width, height); err != nil {
			return err
		}

		return e.fb.Paint(controller.OnDraw)
	})
	if err != nil {
		return nil, err
	}

	e.log.Debug().Msgf("Rendered %s at %dx%d", at.Format(time.RFC3339), width, height)

	return e.fb.Snapshot(), nil
}
