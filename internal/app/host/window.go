//go:build cgo

package host

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"termface/internal/config"
)

// WindowOptions controls the desktop window presenter
type WindowOptions struct {
	Scale   int
	Ambient bool
}

// RunWindow shows the framebuffer in a desktop window until it is closed or ctx is done.
// A toggles ambient, V toggles visibility, Q or Escape quits.
func RunWindow(ctx context.Context, e Engine, opts WindowOptions) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	if err := e.Start(ctx, StartOptions{Ambient: opts.Ambient}); err != nil {
		return err
	}
	defer e.Stop()

	width, height := e.Framebuffer().Size()

	ebiten.SetWindowTitle(config.AppName + " " + config.Version)
	ebiten.SetWindowSize(width*opts.Scale, height*opts.Scale)
	ebiten.SetTPS(config.DefaultFPSCap)

	err := ebiten.RunGame(&windowGame{ctx: ctx, engine: e})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}

type windowGame struct {
	ctx    context.Context
	engine Engine
	img    *ebiten.Image
	seen   uint64
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.engine.SetAmbient(!g.engine.Ambient())
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.engine.SetVisible(!g.engine.Visible())
	}

	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	fb := g.engine.Framebuffer()

	if frames := fb.Frames(); g.img == nil || frames != g.seen {
		if g.img == nil {
			g.img = ebiten.NewImage(fb.Size())
		}

		g.img.WritePixels(fb.Snapshot().Pix)
		g.seen = frames
	}

	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(int, int) (int, int) {
	return g.engine.Framebuffer().Size()
}
