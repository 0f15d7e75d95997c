package config

import "time"

// app constants
const (
	AppName        = "termface"
	AppDescription = "terminal style watch face with a binary clock"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	ConfigFile = "termface.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "TERMFACE"

	Version = "0.3.0"
)

// asset constants
const (
	DefaultAssetsRoot  = "assets"
	DefaultConsoleFont = "fonts/lucidaconsole.ttf"
	DefaultBinaryFont  = "fonts/joystixmonospace.ttf"
	DefaultFramesDir   = "frames"

	FrameCount = 39
)

// surface constants
const (
	DefaultSurfaceWidth  = 320
	DefaultSurfaceHeight = 320
)

// clock constants
const (
	DefaultLocaltime = "/etc/localtime"

	InteractiveUpdateRate = time.Second
	TimeTickInterval      = time.Minute

	ZoneDebounce = 250 * time.Millisecond
)

// host constants
const (
	DefaultFPSCap    = 60
	DefaultRenderOut = "termface.png"
	BusBuffer        = 64

	ShutdownTimeout = 2 * time.Second
	ReportFlush     = 2 * time.Second
)
