package compositor

//go:generate mockgen -source=compositor.go -destination=compositor_mock.go -package=compositor

import (
	"fmt"
	"image"

	"termface/internal/app/animator"
	"termface/internal/app/assets"
	"termface/internal/app/clock"
	"termface/internal/app/errors"
	"termface/internal/app/surface"
	"termface/internal/app/textfit"
	"termface/internal/config/logger"
)

// Layout constants
const (
	ConsoleInitialSize = 50.0
	BinaryInitialSize  = 100.0

	consoleIndent = 10
	consoleTop    = 10.0
	consoleGap    = 3
	binaryGap     = 4
)

// Compositor paints one frame of the face per repaint
type Compositor interface {
	Create() error
	Resize(width, height int) error
	Draw(canvas surface.Canvas, cal *clock.Calendar) error
	SetAmbient(ambient, lowBit bool)
	Geometry() textfit.Geometry
	Metrics() (console, binary textfit.Metric)
}

type scaleKey struct {
	index int
	width int
}

// compositor holds the paints, cached metrics and animation state between repaints
type compositor struct {
	loader assets.Loader
	source clock.Source
	log    logger.Logger

	bundle   *assets.Bundle
	animator *animator.Animator

	background *surface.Paint
	hand       *surface.Paint

	geometry textfit.Geometry
	console  textfit.Metric
	binary   textfit.Metric
	sized    bool

	lastGood      image.Image
	lastGoodIndex int
	scaled        map[scaleKey]*image.RGBA
}

// NewCompositor creates a compositor; assets are loaded by Create
func NewCompositor(loader assets.Loader, source clock.Source, log logger.Logger) Compositor {
	return &compositor{
		loader:   loader,
		source:   source,
		log:      log.WithComponent(logger.ComponentCompositor),
		animator: animator.New(0),
		scaled:   make(map[scaleKey]*image.RGBA),
	}
}

// Create loads fonts and frames and initializes both paints
func (c *compositor) Create() error {
	bundle, err := c.loader.Bundle()
	if err != nil {
		return err
	}

	c.bundle = bundle

	c.background = surface.NewPaint()

	c.hand = surface.NewPaint()
	c.hand.Typeface = bundle.Console

	return nil
}

// Resize recomputes geometry and both cached metrics for a W×H surface
func (c *compositor) Resize(width, height int) error {
	if c.bundle == nil {
		return errors.ErrSurfaceNotReady
	}

	c.sized = false
	c.animator.Reset()
	clear(c.scaled)

	g, err := textfit.NewGeometry(width, height)
	if err != nil {
		return err
	}

	console, err := textfit.Fit(textfit.Longest(TimeCommand, DateCommand), ConsoleInitialSize, c.bundle.Console, g.Budget())
	if err != nil {
		return fmt.Errorf("console metric: %w", err)
	}

	binary, err := textfit.Fit(BinaryReference, BinaryInitialSize, c.bundle.Binary, g.Budget())
	if err != nil {
		return fmt.Errorf("binary metric: %w", err)
	}

	c.geometry = g
	c.console = console
	c.binary = binary
	c.sized = true

	c.log.Debug().Msgf("Surface %dx%d: inner square %d at (%d,%d), console %.1f/%d, binary %.1f/%d",
		width, height, g.InnerWidth, g.InnerX, g.InnerY, console.Size, console.Height, binary.Size, binary.Height)

	return nil
}

// Draw paints background, console lines and binary rows for the current time
func (c *compositor) Draw(canvas surface.Canvas, cal *clock.Calendar) error {
	if !c.sized {
		return fmt.Errorf("%w: surface not sized", errors.ErrInvalidGeometry)
	}

	cal.SetTimeInMillis(c.source.NowMillis())

	bgErr := c.drawBackground(canvas)

	last := c.drawConsole(canvas, ConsoleLines(cal))
	c.drawBinary(canvas, BinaryRows(cal), last)

	return bgErr
}

// drawBackground advances the animation and blits the scaled raster at the origin
func (c *compositor) drawBackground(canvas surface.Canvas) error {
	index := c.animator.Next(c.bundle.Frames.Len())

	raster, err := c.bundle.Frames.Frame(index)
	if err != nil {
		if c.lastGood == nil {
			return err
		}

		c.log.Warn().Err(err).Msgf("Frame %d unavailable, reusing frame %d", index, c.lastGoodIndex)
		canvas.DrawBitmap(c.scale(c.lastGoodIndex, c.lastGood), 0, 0, c.background)

		return err
	}

	c.lastGood = raster
	c.lastGoodIndex = index

	canvas.DrawBitmap(c.scale(index, raster), 0, 0, c.background)

	return nil
}

// scale fits the raster to the surface width, memoized by frame and width
func (c *compositor) scale(index int, raster image.Image) *image.RGBA {
	key := scaleKey{index: index, width: c.geometry.Width}
	if img, ok := c.scaled[key]; ok {
		return img
	}

	b := raster.Bounds()
	factor := float64(c.geometry.Width) / float64(b.Dx())

	img := surface.Scale(raster, int(float64(b.Dx())*factor), int(float64(b.Dy())*factor), c.background.FilterBitmap)
	c.scaled[key] = img

	return img
}

// drawConsole draws the console lines and returns the final cursor
func (c *compositor) drawConsole(canvas surface.Canvas, lines [4]string) float64 {
	c.hand.TextSize = c.console.Size
	c.hand.Typeface = c.bundle.Console

	x := float64(c.geometry.InnerX + consoleIndent)
	top := float64(c.geometry.InnerY)
	cursor := consoleTop

	for _, line := range lines {
		canvas.DrawText(line, x, top+cursor, c.hand)
		cursor += float64(c.console.Height + consoleGap)
	}

	return cursor
}

// drawBinary draws the three binary rows centered below the console block
func (c *compositor) drawBinary(canvas surface.Canvas, rows [3]string, last float64) {
	c.background.TextSize = c.binary.Size
	c.background.Typeface = c.bundle.Binary

	r := canvas.TextBounds(BinaryReference, c.background)
	x := c.geometry.CenterX - float64(r.Dx()/2)

	top := float64(c.geometry.InnerY) + last
	h := float64(c.binary.Height)

	canvas.DrawText(rows[0], x, top+binaryGap+h, c.background)
	canvas.DrawText(rows[1], x, top+2*(h+binaryGap), c.background)
	canvas.DrawText(rows[2], x, top+3*(h+binaryGap), c.background)
}

// SetAmbient drops antialiasing while ambient on low-bit displays
func (c *compositor) SetAmbient(ambient, lowBit bool) {
	aa := !(ambient && lowBit)

	if c.background != nil {
		c.background.AntiAlias = aa
	}

	if c.hand != nil {
		c.hand.AntiAlias = aa
	}
}

// Geometry returns the geometry of the last successful resize
func (c *compositor) Geometry() textfit.Geometry {
	return c.geometry
}

// Metrics returns the cached console and binary metrics
func (c *compositor) Metrics() (console, binary textfit.Metric) {
	return c.console, c.binary
}
