package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"termface/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{name: "Default", level: config.DefaultLogLevel, format: ConsoleFormat, expected: zerolog.InfoLevel},
		{name: "Debug level", level: DebugLevel, format: ConsoleFormat, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", level: WarnLevel, format: JSONFormat, expected: zerolog.WarnLevel},
		{name: "Empty level and format (defaults)", level: "", format: "", expected: zerolog.InfoLevel},
		{name: "Unknown format (defaults to console)", level: ErrorLevel, format: "unknown", expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLogger(cfg)
			assert.NotNil(t, logger)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_NewLoggerWithOutput_WritesComponent(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = DebugLevel

	log := NewLoggerWithOutput(cfg, &buf).WithComponent(ComponentCompositor)
	log.Debug().Int("frame", 6).Msg("frame drawn")

	var entry map[string]interface{}
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "COMPOSITOR", entry["component"])
	assert.Equal(t, config.AppName, entry["app"])
	assert.Equal(t, "frame drawn", entry["message"])
	assert.Equal(t, float64(6), entry["frame"])
}

func Test_NewLoggerWithOutput_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = WarnLevel

	log := NewLoggerWithOutput(cfg, &buf)
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Fatal", level: FatalLevel, expected: zerolog.FatalLevel},
		{name: "Panic", level: PanicLevel, expected: zerolog.PanicLevel},
		{name: "Trace", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Unknown", level: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}

func Test_formatComponent(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{name: "Widest", component: ComponentCompositor, expected: "[COMPOSITOR]"},
		{name: "Short", component: ComponentUI, expected: "[UI]        "},
		{name: "Lifecycle", component: ComponentLifecycle, expected: "[LIFECYCLE] "},
		{name: "Longer than widest", component: "HOST_RENDERER", expected: "[HOST_RENDERER]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatComponent(tt.component))
		})
	}
}

func Test_ComponentNames_Distinct(t *testing.T) {
	names := []string{
		ComponentAssets, ComponentBus, ComponentCLI, ComponentClock, ComponentCompositor,
		ComponentHeadless, ComponentHost, ComponentLifecycle, ComponentLooper, ComponentRender,
		ComponentReport, ComponentUI, ComponentZoneWatch,
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate component %s", name)
		assert.LessOrEqual(t, len(name), componentWidth)
		seen[name] = true
	}
}
