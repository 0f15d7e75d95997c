package surface

import (
	"image/color"

	"golang.org/x/image/font"
)

// Paint is the mutable drawing state shared between draw calls
type Paint struct {
	Color        color.Color
	TextSize     float64
	Typeface     *Typeface
	AntiAlias    bool
	FilterBitmap bool
	StrokeWidth  float64
}

// NewPaint returns a white antialiased paint with the platform default text size
func NewPaint() *Paint {
	return &Paint{
		Color:        color.White,
		TextSize:     12,
		AntiAlias:    true,
		FilterBitmap: true,
		StrokeWidth:  3,
	}
}

// face resolves the font face for the paint's typeface and size
func (p *Paint) face() (font.Face, error) {
	if p.Typeface == nil {
		return defaultFace, nil
	}

	return p.Typeface.Face(p.TextSize)
}

// typefaceName returns the typeface asset name or "default"
func (p *Paint) typefaceName() string {
	if p.Typeface == nil {
		return "default"
	}

	return p.Typeface.Name()
}
