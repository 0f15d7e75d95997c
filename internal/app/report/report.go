package report

//go:generate mockgen -source=report.go -destination=report_mock.go -package=report

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"termface/internal/config"
	"termface/internal/config/logger"
)

// Reporter forwards paint and lifecycle failures to an error sink
type Reporter interface {
	Capture(err error)
	Flush(timeout time.Duration) bool
}

// NewReporter returns a sentry reporter when a DSN is configured, a logging reporter otherwise
func NewReporter(cfg *config.Config, log logger.Logger) Reporter {
	log = log.WithComponent(logger.ComponentReport)

	if cfg.Report.DSN == "" {
		return &logReporter{log: log}
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.Report.DSN,
		Release:          config.AppName + "@" + config.Version,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize sentry, falling back to log reporting")
		return &logReporter{log: log}
	}

	hub := sentry.NewHub(client, sentry.NewScope())
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("surface", surfaceTag(cfg))
	})

	log.Debug().Msg("Sentry reporting enabled")

	return &sentryReporter{hub: hub, log: log}
}

// sentryReporter captures errors on a dedicated hub
type sentryReporter struct {
	hub *sentry.Hub
	log logger.Logger
}

func (r *sentryReporter) Capture(err error) {
	if err == nil {
		return
	}

	r.log.Error().Err(err).Msg("Reporting failure")
	r.hub.CaptureException(err)
}

func (r *sentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

// logReporter only logs
type logReporter struct {
	log logger.Logger
}

func (r *logReporter) Capture(err error) {
	if err == nil {
		return
	}

	r.log.Error().Err(err).Msg("Failure")
}

func (r *logReporter) Flush(time.Duration) bool {
	return true
}

func surfaceTag(cfg *config.Config) string {
	return fmt.Sprintf("%dx%d", cfg.Surface.Width, cfg.Surface.Height)
}
