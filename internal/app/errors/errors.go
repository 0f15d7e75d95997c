package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigExists        = errors.New("config file already exists")

	ErrInvalidSurfaceSize = errors.New("surface width and height must be positive")
	ErrInvalidFrameCount  = errors.New("frame count must be positive")
	ErrInvalidZone        = errors.New("unknown time zone")

	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrAssetMissing    = errors.New("asset missing")
	ErrDecodeFailure   = errors.New("failed to decode frame")

	ErrSurfaceNotReady = errors.New("surface not ready")
	ErrEngineDestroyed = errors.New("engine destroyed")
	ErrLooperStopped   = errors.New("looper stopped")
	ErrNotTerminal     = errors.New("preview requires an interactive terminal")
	ErrWindowNoCgo     = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
