package clock

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"termface/internal/config"
	"termface/internal/config/logger"
)

func newTestSource(c Clock, mutate func(cfg *config.Config)) Source {
	cfg := config.DefaultConfig()
	cfg.Clock.Localtime = ""

	if mutate != nil {
		mutate(cfg)
	}

	return NewSource(c, cfg, logger.NewLoggerWithOutput(cfg, io.Discard))
}

func Test_NowMillis(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 7, 5, 250_000_000, time.UTC)
	src := newTestSource(Fixed{T: at}, nil)

	assert.Equal(t, at.UnixMilli(), src.NowMillis())
}

func Test_FuncClock(t *testing.T) {
	calls := 0
	c := Func(func() time.Time {
		calls++
		return time.Unix(int64(calls), 0)
	})

	assert.Equal(t, int64(1), c.Now().Unix())
	assert.Equal(t, int64(2), c.Now().Unix())
}

func Test_DefaultZone(t *testing.T) {
	t.Run("configured zone wins", func(t *testing.T) {
		t.Setenv("TZ", "Asia/Tokyo")

		src := newTestSource(Real{}, func(cfg *config.Config) {
			cfg.Clock.Zone = "Europe/Madrid"
		})

		assert.Equal(t, "Europe/Madrid", src.DefaultZone().String())
	})

	t.Run("TZ used when no zone configured", func(t *testing.T) {
		t.Setenv("TZ", "Asia/Tokyo")

		src := newTestSource(Real{}, nil)

		assert.Equal(t, "Asia/Tokyo", src.DefaultZone().String())
	})

	t.Run("localtime file read on every call", func(t *testing.T) {
		t.Setenv("TZ", "")

		path := filepath.Join(t.TempDir(), "localtime")
		src := newTestSource(Real{}, func(cfg *config.Config) {
			cfg.Clock.Localtime = path
		})

		assert.Equal(t, time.Local, src.DefaultZone())

		data, err := os.ReadFile("/usr/share/zoneinfo/America/New_York")
		if err != nil {
			t.Skip("zoneinfo database not available")
		}
		assert.NoError(t, os.WriteFile(path, data, 0o600))

		at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
		_, offset := at.In(src.DefaultZone()).Zone()
		assert.Equal(t, -4*3600, offset)
	})
}

func Test_Calendar(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	assert.NoError(t, err)

	at := time.Date(2024, 3, 15, 9, 7, 5, 0, madrid)

	cal := NewCalendar(madrid)
	cal.SetTimeInMillis(at.UnixMilli())

	assert.Equal(t, 9, cal.Hour)
	assert.Equal(t, 7, cal.Minute)
	assert.Equal(t, 5, cal.Second)
	assert.Equal(t, 15, cal.Day)
	assert.Equal(t, 3, cal.Month)
	assert.Equal(t, 2024, cal.Year)

	cal.SetTimeZone(time.UTC)
	assert.Equal(t, 8, cal.Hour)
	assert.Equal(t, at.UnixMilli(), cal.Millis())
}

func Test_Calendar_MonthIsOneBased(t *testing.T) {
	cal := NewCalendar(time.UTC)
	cal.SetTimeInMillis(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli())

	assert.Equal(t, 1, cal.Month)
	assert.Equal(t, 1, cal.Day)
	assert.Equal(t, 0, cal.Hour)
}

func Test_Calendar_NilZone(t *testing.T) {
	cal := NewCalendar(nil)
	assert.Equal(t, time.UTC, cal.Zone())

	cal.SetTimeZone(nil)
	assert.Equal(t, time.UTC, cal.Zone())
}

func Test_Calendar_Copy(t *testing.T) {
	cal := NewCalendar(time.UTC)
	cal.SetTimeInMillis(0)

	snapshot := cal.Copy()
	cal.SetTimeInMillis(time.Hour.Milliseconds())

	assert.Equal(t, 0, snapshot.Hour)
	assert.Equal(t, 1, cal.Hour)
}
