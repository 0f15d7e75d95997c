package textfit

import (
	"fmt"
	"image"

	"termface/internal/app/errors"
)

// Step is the decrement applied to the candidate size on every attempt
const Step = 0.5

// Measurer reports the tight bounds of text rendered at a pixel size
type Measurer interface {
	Bounds(text string, size float64) (image.Rectangle, error)
}

// Metric is a cached (size, line height) pair
type Metric struct {
	Size   float64
	Height int
}

// Fit finds the largest size not above initial at which text fits strictly inside maxWidth.
//
// The returned size is one Step below the first fitting candidate and the height is the
// bounds height measured at that candidate. Width is the right edge of the tight bounds.
func Fit(text string, initial float64, m Measurer, maxWidth int) (Metric, error) {
	if maxWidth <= 0 {
		return Metric{}, fmt.Errorf("%w: layout budget %d", errors.ErrInvalidGeometry, maxWidth)
	}

	for candidate := initial; candidate > 0; candidate -= Step {
		b, err := m.Bounds(text, candidate)
		if err != nil {
			return Metric{}, err
		}

		if b.Max.X >= maxWidth {
			continue
		}

		size := candidate - Step
		if size <= 0 {
			break
		}

		return Metric{Size: size, Height: b.Dy()}, nil
	}

	return Metric{}, fmt.Errorf("%w: %q does not fit in %dpx", errors.ErrInvalidGeometry, text, maxWidth)
}

// Longest returns the longer of two strings, preferring b on a tie
func Longest(a, b string) string {
	if len(a) > len(b) {
		return a
	}

	return b
}
