package textfit

import (
	"fmt"
	"math"

	"termface/internal/app/errors"
)

// Margin is the right margin subtracted from the inscribed square to form the layout budget
const Margin = 10

// Geometry is the surface size plus the inscribed square used as the text safe area
type Geometry struct {
	Width   int
	Height  int
	CenterX float64
	CenterY float64

	InnerWidth  int
	InnerHeight int
	InnerX      int
	InnerY      int
}

// NewGeometry derives the inscribed square of a W×H surface
func NewGeometry(width, height int) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("%w: surface %dx%d", errors.ErrInvalidGeometry, width, height)
	}

	sqX := 0.5 * math.Sqrt2 * float64(width)
	sqY := 0.5 * math.Sqrt2 * float64(height)

	return Geometry{
		Width:       width,
		Height:      height,
		CenterX:     float64(width) / 2,
		CenterY:     float64(height) / 2,
		InnerWidth:  int(sqX),
		InnerHeight: int(sqY),
		InnerX:      int((float64(width) - sqX) / 2),
		InnerY:      int((float64(height) - sqY) / 2),
	}, nil
}

// Budget is the console line width limit
func (g Geometry) Budget() int {
	return g.InnerWidth - Margin
}
