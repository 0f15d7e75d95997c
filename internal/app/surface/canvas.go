package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is the drawing surface handed to a repaint
type Canvas interface {
	Width() int
	Height() int
	DrawBitmap(src image.Image, x, y int, paint *Paint)
	DrawText(text string, x, y float64, paint *Paint)
	TextBounds(text string, paint *Paint) image.Rectangle
}

// ImageCanvas draws into an RGBA image
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas wraps img
func NewImageCanvas(img *image.RGBA) *ImageCanvas {
	return &ImageCanvas{img: img}
}

// Image returns the backing image
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

func (c *ImageCanvas) Width() int  { return c.img.Bounds().Dx() }
func (c *ImageCanvas) Height() int { return c.img.Bounds().Dy() }

// Clear fills the canvas with col
func (c *ImageCanvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawBitmap composites src with its top-left corner at (x, y)
func (c *ImageCanvas) DrawBitmap(src image.Image, x, y int, _ *Paint) {
	sb := src.Bounds()
	dr := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())

	draw.Draw(c.img, dr, src, sb.Min, draw.Over)
}

// DrawText draws text with its baseline origin at (x, y)
func (c *ImageCanvas) DrawText(text string, x, y float64, paint *Paint) {
	face, err := paint.face()
	if err != nil || text == "" {
		return
	}

	dot := fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
	src := image.NewUniform(paint.Color)

	if paint.AntiAlias {
		d := font.Drawer{Dst: c.img, Src: src, Face: face, Dot: dot}
		d.DrawString(text)

		return
	}

	b, _ := font.BoundString(face, text)
	r := toRect(b.Add(dot)).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	mask := image.NewAlpha(r)
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face, Dot: dot}
	d.DrawString(text)

	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}

	draw.DrawMask(c.img, r, src, image.Point{}, mask, r.Min, draw.Over)
}

// TextBounds returns the tight bounds of text drawn with paint at the origin
func (c *ImageCanvas) TextBounds(text string, paint *Paint) image.Rectangle {
	return measure(text, paint)
}

func measure(text string, paint *Paint) image.Rectangle {
	face, err := paint.face()
	if err != nil {
		return image.Rectangle{}
	}

	return tightBounds(face, text)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
