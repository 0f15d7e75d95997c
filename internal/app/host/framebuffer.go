package host

import (
	"image"
	"image/color"
	"sync"

	"termface/internal/app/surface"
)

// Framebuffer is the surface the face paints into; presenters read copies of it
type Framebuffer struct {
	mu     sync.Mutex
	img    *image.RGBA
	canvas *surface.ImageCanvas
	frames uint64
}

// NewFramebuffer allocates a black width×height framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fb := &Framebuffer{img: img, canvas: surface.NewImageCanvas(img)}
	fb.canvas.Clear(color.Black)

	return fb
}

// Paint clears the buffer and runs draw against it while holding the buffer lock
func (f *Framebuffer) Paint(draw func(canvas surface.Canvas) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.canvas.Clear(color.Black)

	if err := draw(f.canvas); err != nil {
		return err
	}

	f.frames++

	return nil
}

// Snapshot returns a copy of the current pixels
func (f *Framebuffer) Snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := image.NewRGBA(f.img.Rect)
	copy(cp.Pix, f.img.Pix)

	return cp
}

// Frames counts completed paints
func (f *Framebuffer) Frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.frames
}

// Size returns the framebuffer dimensions
func (f *Framebuffer) Size() (int, int) {
	return f.img.Rect.Dx(), f.img.Rect.Dy()
}
