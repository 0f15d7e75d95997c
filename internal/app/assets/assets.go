package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"termface/internal/app/errors"
	"termface/internal/app/surface"
	"termface/internal/config"
	"termface/internal/config/logger"
)

// Bundle holds everything the compositor needs to paint
type Bundle struct {
	Console *surface.Typeface
	Binary  *surface.Typeface
	Frames  FrameStore
}

// Loader opens fonts and raster frames relative to an asset root
type Loader interface {
	Font(rel string) (*surface.Typeface, error)
	Frames() (FrameStore, error)
	Bundle() (*Bundle, error)
}

// loader implements Loader over an fs.FS
type loader struct {
	fsys fs.FS
	cfg  *config.Config
	log  logger.Logger
}

// NewLoader creates a Loader reading from fsys
func NewLoader(fsys fs.FS, cfg *config.Config, log logger.Logger) Loader {
	return &loader{
		fsys: fsys,
		cfg:  cfg,
		log:  log.WithComponent(logger.ComponentAssets),
	}
}

// NewDirLoader creates a Loader rooted at the configured assets directory
func NewDirLoader(cfg *config.Config, log logger.Logger) Loader {
	return NewLoader(os.DirFS(cfg.Assets.Root), cfg, log)
}

// Font loads and parses a font file by relative path
func (l *loader) Font(rel string) (*surface.Typeface, error) {
	data, err := fs.ReadFile(l.fsys, rel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrAssetMissing, rel, err)
	}

	tf, err := surface.ParseTypeface(path.Base(rel), data)
	if err != nil {
		return nil, err
	}

	l.log.Debug().Msgf("Loaded font '%s' (%d bytes)", rel, len(data))

	return tf, nil
}

// Frames discovers the raster frames under the frames directory
func (l *loader) Frames() (FrameStore, error) {
	store, err := discoverFrames(l.fsys, l.cfg.Assets.FramesDir, l.log)
	if err != nil {
		return nil, err
	}

	l.log.Info().Msgf("Discovered %d frames in '%s'", store.Len(), l.cfg.Assets.FramesDir)

	return store, nil
}

// Bundle loads both fonts and the frame store
func (l *loader) Bundle() (*Bundle, error) {
	console, err := l.Font(l.cfg.Assets.ConsoleFont)
	if err != nil {
		return nil, err
	}

	binary, err := l.Font(l.cfg.Assets.BinaryFont)
	if err != nil {
		return nil, err
	}

	frames, err := l.Frames()
	if err != nil {
		return nil, err
	}

	return &Bundle{Console: console, Binary: binary, Frames: frames}, nil
}
