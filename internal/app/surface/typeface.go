package surface

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"termface/internal/app/errors"
)

// dpi makes one point equal one pixel, matching pixel-sized text on the device
const dpi = 72

// Typeface is a parsed OpenType font with a per-size face cache
type Typeface struct {
	name  string
	font  *opentype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

// ParseTypeface parses TrueType/OpenType data
func ParseTypeface(name string, data []byte) (*Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrAssetMissing, name, err)
	}

	return &Typeface{
		name:  name,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Name returns the asset name the typeface was loaded from
func (t *Typeface) Name() string {
	return t.name
}

// Face returns a face at the given pixel size
func (t *Typeface) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: text size %.1f", errors.ErrInvalidGeometry, size)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if face, ok := t.faces[size]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	t.faces[size] = face

	return face, nil
}

// Bounds returns the tight integer bounds of text relative to the baseline origin
func (t *Typeface) Bounds(text string, size float64) (image.Rectangle, error) {
	face, err := t.Face(size)
	if err != nil {
		return image.Rectangle{}, err
	}

	return tightBounds(face, text), nil
}

// defaultFace stands in when a paint carries no typeface
var defaultFace font.Face = basicfont.Face7x13

// tightBounds encloses the inked area of text drawn at the origin
func tightBounds(face font.Face, text string) image.Rectangle {
	if text == "" {
		return image.Rectangle{}
	}

	b, _ := font.BoundString(face, text)

	return toRect(b)
}

func toRect(b fixed.Rectangle26_6) image.Rectangle {
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}
