package clock

import "time"

// Calendar is a mutable broken-down time bound to a zone, reused across frames
type Calendar struct {
	Hour   int
	Minute int
	Second int
	Day    int
	Month  int
	Year   int

	millis int64
	zone   *time.Location
}

// NewCalendar creates a calendar bound to zone
func NewCalendar(zone *time.Location) *Calendar {
	if zone == nil {
		zone = time.UTC
	}

	return &Calendar{zone: zone}
}

// SetTimeZone rebinds the calendar and recomputes its fields
func (c *Calendar) SetTimeZone(zone *time.Location) {
	if zone == nil {
		return
	}

	c.zone = zone
	c.compute()
}

// SetTimeInMillis binds the calendar to an epoch instant
func (c *Calendar) SetTimeInMillis(ms int64) {
	c.millis = ms
	c.compute()
}

// Zone returns the bound zone
func (c *Calendar) Zone() *time.Location {
	return c.zone
}

// Millis returns the bound instant
func (c *Calendar) Millis() int64 {
	return c.millis
}

// Copy returns a detached copy safe to hand to other goroutines
func (c *Calendar) Copy() Calendar {
	return *c
}

func (c *Calendar) compute() {
	t := time.UnixMilli(c.millis).In(c.zone)

	c.Hour = t.Hour()
	c.Minute = t.Minute()
	c.Second = t.Second()
	c.Day = t.Day()
	c.Month = int(t.Month())
	c.Year = t.Year()
}
