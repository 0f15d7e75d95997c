//go:build !cgo

package host

import (
	"context"

	"termface/internal/app/errors"
)

// WindowOptions controls the desktop window presenter
type WindowOptions struct {
	Scale   int
	Ambient bool
}

// RunWindow is unavailable without cgo
func RunWindow(context.Context, Engine, WindowOptions) error {
	return errors.ErrWindowNoCgo
}
