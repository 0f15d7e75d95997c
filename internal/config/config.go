package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"termface/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Assets struct {
		Root        string `mapstructure:"root" yaml:"root"`
		ConsoleFont string `mapstructure:"console_font" yaml:"console_font"`
		BinaryFont  string `mapstructure:"binary_font" yaml:"binary_font"`
		FramesDir   string `mapstructure:"frames_dir" yaml:"frames_dir"`
	} `mapstructure:"assets" yaml:"assets"`
	Surface struct {
		Width         int  `mapstructure:"width" yaml:"width"`
		Height        int  `mapstructure:"height" yaml:"height"`
		LowBitAmbient bool `mapstructure:"low_bit_ambient" yaml:"low_bit_ambient"`
	} `mapstructure:"surface" yaml:"surface"`
	Clock struct {
		Zone      string `mapstructure:"zone" yaml:"zone"`
		Localtime string `mapstructure:"localtime" yaml:"localtime"`
	} `mapstructure:"clock" yaml:"clock"`
	Host struct {
		FPSCap int `mapstructure:"fps_cap" yaml:"fps_cap"`
	} `mapstructure:"host" yaml:"host"`
	Logging struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"logging" yaml:"logging"`
	Report struct {
		DSN string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"report" yaml:"report"`
	Version int `mapstructure:"version" yaml:"version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Assets.Root = DefaultAssetsRoot
	cfg.Assets.ConsoleFont = DefaultConsoleFont
	cfg.Assets.BinaryFont = DefaultBinaryFont
	cfg.Assets.FramesDir = DefaultFramesDir

	cfg.Surface.Width = DefaultSurfaceWidth
	cfg.Surface.Height = DefaultSurfaceHeight

	cfg.Clock.Localtime = DefaultLocaltime

	cfg.Host.FPSCap = DefaultFPSCap

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// Load loads the configuration from termface.yaml and TERMFACE_* environment overrides
func Load() (*Config, error) {
	return LoadFrom(ConfigFile)
}

// LoadFrom loads the configuration from the given file path
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// bindDefaults registers every key so AutomaticEnv can override it
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("assets.root", cfg.Assets.Root)
	v.SetDefault("assets.console_font", cfg.Assets.ConsoleFont)
	v.SetDefault("assets.binary_font", cfg.Assets.BinaryFont)
	v.SetDefault("assets.frames_dir", cfg.Assets.FramesDir)
	v.SetDefault("surface.width", cfg.Surface.Width)
	v.SetDefault("surface.height", cfg.Surface.Height)
	v.SetDefault("surface.low_bit_ambient", cfg.Surface.LowBitAmbient)
	v.SetDefault("clock.zone", cfg.Clock.Zone)
	v.SetDefault("clock.localtime", cfg.Clock.Localtime)
	v.SetDefault("host.fps_cap", cfg.Host.FPSCap)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("report.dsn", cfg.Report.DSN)
	v.SetDefault("version", cfg.Version)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateSurface(); err != nil {
		return err
	}

	if err := c.validateHost(); err != nil {
		return err
	}

	return c.validateClock()
}

// validateSurface validates surface dimensions
func (c *Config) validateSurface() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return errors.ErrInvalidSurfaceSize
	}

	return nil
}

// validateHost validates host settings
func (c *Config) validateHost() error {
	if c.Host.FPSCap <= 0 {
		c.Host.FPSCap = DefaultFPSCap
	}

	return nil
}

// validateClock validates the configured zone name, if any
func (c *Config) validateClock() error {
	if c.Clock.Zone == "" {
		return nil
	}

	if _, err := time.LoadLocation(c.Clock.Zone); err != nil {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidZone, c.Clock.Zone)
	}

	return nil
}

// Template renders the configuration as a termface.yaml document
func (c *Config) Template() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
