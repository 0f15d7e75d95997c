package surface

import "image"

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpBitmap OpKind = iota
	OpText
)

// Op is one recorded draw call
type Op struct {
	Kind     OpKind
	Text     string
	X, Y     float64
	Size     float64
	Typeface string
	Bitmap   image.Image
}

// Recorder is a canvas that records draw calls instead of rasterizing them
type Recorder struct {
	width  int
	height int
	ops    []Op
}

// NewRecorder creates a recorder of the given size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

// DrawBitmap records a bitmap draw
func (r *Recorder) DrawBitmap(src image.Image, x, y int, _ *Paint) {
	r.ops = append(r.ops, Op{Kind: OpBitmap, X: float64(x), Y: float64(y), Bitmap: src})
}

// DrawText records a text draw with the paint state at call time
func (r *Recorder) DrawText(text string, x, y float64, paint *Paint) {
	r.ops = append(r.ops, Op{
		Kind:     OpText,
		Text:     text,
		X:        x,
		Y:        y,
		Size:     paint.TextSize,
		Typeface: paint.typefaceName(),
	})
}

// TextBounds measures with the real font so recorded layouts match rasterized ones
func (r *Recorder) TextBounds(text string, paint *Paint) image.Rectangle {
	return measure(text, paint)
}

// Ops returns every recorded call in order
func (r *Recorder) Ops() []Op { return r.ops }

// Texts returns the recorded text calls in order
func (r *Recorder) Texts() []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}

	return out
}

// Bitmaps returns the recorded bitmap calls in order
func (r *Recorder) Bitmaps() []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == OpBitmap {
			out = append(out, op)
		}
	}

	return out
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
