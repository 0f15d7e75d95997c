package clock

import (
	"os"
	"time"

	"termface/internal/config"
	"termface/internal/config/logger"
)

// Clock provides the current wall-clock instant
type Clock interface {
	Now() time.Time
}

// Real returns system time
type Real struct{}

// Now returns the current system time
func (Real) Now() time.Time { return time.Now() }

// Fixed always returns the same instant
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant
func (c Fixed) Now() time.Time { return c.T }

// Func adapts a function to Clock
type Func func() time.Time

// Now calls the wrapped function
func (f Func) Now() time.Time { return f() }

var (
	_ Clock = Real{}
	_ Clock = Fixed{}
	_ Clock = Func(nil)
)

// Source supplies epoch millis and the current default time zone
type Source interface {
	NowMillis() int64
	DefaultZone() *time.Location
}

// source resolves the default zone on every call so zone changes are picked up on rebind
type source struct {
	clock     Clock
	zone      string
	localtime string
	log       logger.Logger
}

// NewSource creates a Source reading time from c
func NewSource(c Clock, cfg *config.Config, log logger.Logger) Source {
	return &source{
		clock:     c,
		zone:      cfg.Clock.Zone,
		localtime: cfg.Clock.Localtime,
		log:       log.WithComponent(logger.ComponentClock),
	}
}

// NewRealSource is the fx constructor backed by system time
func NewRealSource(cfg *config.Config, log logger.Logger) Source {
	return NewSource(Real{}, cfg, log)
}

// NowMillis returns the current instant in milliseconds since the epoch
func (s *source) NowMillis() int64 {
	return s.clock.Now().UnixMilli()
}

// DefaultZone resolves configured zone, then TZ, then the localtime file, then time.Local
func (s *source) DefaultZone() *time.Location {
	if s.zone != "" {
		if loc, err := time.LoadLocation(s.zone); err == nil {
			return loc
		}
	}

	if tz, ok := os.LookupEnv("TZ"); ok && tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}

		s.log.Warn().Msgf("Ignoring unknown TZ '%s'", tz)
	}

	if s.localtime != "" {
		data, err := os.ReadFile(s.localtime)
		if err == nil {
			if loc, err := time.LoadLocationFromTZData("Local", data); err == nil {
				return loc
			}
		}
	}

	return time.Local
}
