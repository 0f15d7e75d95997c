package surface

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes src to w×h, bilinear when filter is set and nearest-neighbour otherwise
func Scale(src image.Image, w, h int, filter bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}

	var scaler draw.Scaler = draw.NearestNeighbor
	if filter {
		scaler = draw.BiLinear
	}

	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst
}
