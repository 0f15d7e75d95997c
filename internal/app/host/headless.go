package host

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"termface/internal/config/logger"
)

// HeadlessOptions controls a run without a window
type HeadlessOptions struct {
	Frames      int
	SnapshotDir string
	Ambient     bool
}

// RunHeadless drives the face until ctx is done or Frames frames were painted,
// optionally writing every painted frame as a PNG
func RunHeadless(ctx context.Context, e Engine, opts HeadlessOptions, log logger.Logger) error {
	log = log.WithComponent(logger.ComponentHeadless)

	if opts.SnapshotDir != "" {
		if err := os.MkdirAll(opts.SnapshotDir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	if err := e.Start(ctx, StartOptions{Ambient: opts.Ambient}); err != nil {
		return err
	}
	defer e.Stop()

	painted := 0

	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("Stopping after %d frames", painted)
			return nil
		case <-e.Drawn():
			painted++

			if opts.SnapshotDir != "" {
				path := filepath.Join(opts.SnapshotDir, fmt.Sprintf("frame_%06d.png", painted))
				if err := SavePNG(e.Framebuffer().Snapshot(), path); err != nil {
					return err
				}

				log.Debug().Msgf("Wrote snapshot '%s'", path)
			}

			if opts.Frames > 0 && painted >= opts.Frames {
				log.Info().Msgf("Painted %d frames", painted)
				return nil
			}
		}
	}
}

// SavePNG encodes img to path
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}
