package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.yaml.in/yaml/v3"

	"termface/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultAssetsRoot, cfg.Assets.Root)
	assert.Equal(t, DefaultConsoleFont, cfg.Assets.ConsoleFont)
	assert.Equal(t, DefaultBinaryFont, cfg.Assets.BinaryFont)
	assert.Equal(t, DefaultSurfaceWidth, cfg.Surface.Width)
	assert.Equal(t, DefaultSurfaceHeight, cfg.Surface.Height)
	assert.Equal(t, DefaultLocaltime, cfg.Clock.Localtime)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, 1, cfg.Version)
}

func Test_LoadFrom(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		write    bool
		error    error
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:  "no config file found - uses default",
			write: false,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultSurfaceWidth, cfg.Surface.Width)
			},
		},
		{
			name: "valid config file",
			content: `version: 1
assets:
  root: ./res
surface:
  width: 400
  height: 400
  low_bit_ambient: true
logging:
  level: debug
  format: json
`,
			write: true,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "./res", cfg.Assets.Root)
				assert.Equal(t, DefaultConsoleFont, cfg.Assets.ConsoleFont)
				assert.Equal(t, 400, cfg.Surface.Width)
				assert.True(t, cfg.Surface.LowBitAmbient)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name:    "malformed yaml",
			content: "surface: [unclosed",
			write:   true,
			error:   errors.ErrFailedToParseConfig,
		},
		{
			name: "zero surface size",
			content: `surface:
  width: 0
`,
			write: true,
			error: errors.ErrInvalidConfig,
		},
		{
			name: "unknown zone",
			content: `clock:
  zone: Mars/Olympus_Mons
`,
			write: true,
			error: errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFile)
			if tt.write {
				assert.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			}

			cfg, err := LoadFrom(path)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, cfg)

			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func Test_LoadFrom_EnvOverride(t *testing.T) {
	t.Setenv("TERMFACE_SURFACE_WIDTH", "454")
	t.Setenv("TERMFACE_CLOCK_ZONE", "Europe/Madrid")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), ConfigFile))

	assert.NoError(t, err)
	assert.Equal(t, 454, cfg.Surface.Width)
	assert.Equal(t, DefaultSurfaceHeight, cfg.Surface.Height)
	assert.Equal(t, "Europe/Madrid", cfg.Clock.Zone)
}

func Test_Validate_FPSCapDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host.FPSCap = 0

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultFPSCap, cfg.Host.FPSCap)
}

func Test_Template(t *testing.T) {
	cfg := DefaultConfig()

	data, err := cfg.Template()
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "assets")
	assert.Contains(t, decoded, "surface")
	assert.Contains(t, string(data), "fonts/lucidaconsole.ttf")
}
