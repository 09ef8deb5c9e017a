package raster

import "image"

// Target receives final 8-bit pixels. (x, y) is in image coordinates with
// y = 0 at the top row.
type Target interface {
	PutPixel(x, y int, r, g, b uint8)
}

// FrameBuffer holds the rendering target as a flat slice for cache locality.
// Distinct pixels may be written concurrently.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a black, fully opaque buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	color := make([]uint8, w*h*4)
	for i := 3; i < len(color); i += 4 {
		color[i] = 255
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  color,
	}
}

// PutPixel ignores coordinates outside the buffer.
func (fb *FrameBuffer) PutPixel(x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = r
	fb.Color[i+1] = g
	fb.Color[i+2] = b
}

// At returns the RGB triple stored at (x, y).
func (fb *FrameBuffer) At(x, y int) (r, g, b uint8) {
	i := (y*fb.Width + x) * 4
	return fb.Color[i], fb.Color[i+1], fb.Color[i+2]
}

// Image copies the buffer into a new RGBA image.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
