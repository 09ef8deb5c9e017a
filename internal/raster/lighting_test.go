package raster

import (
	"image"
	"image/color"
	"testing"

	"raycast-renderer/internal/colour"
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/ray"
)

func colourClose(a, b colour.Colour, eps float32) bool {
	return mathutil.ApproxEqual(a.R, b.R, eps) && mathutil.ApproxEqual(a.G, b.G, eps) && mathutil.ApproxEqual(a.B, b.B, eps)
}

func TestSkyGradient(t *testing.T) {
	sky := DefaultSky()
	tests := []struct {
		name     string
		dir      mathutil.Vec3
		depth    int
		expected colour.Colour
	}{
		{"straight up", mathutil.Vec3{0, 1, 0}, 50, colour.SkyBlue},
		{"straight down", mathutil.Vec3{0, -1, 0}, 50, colour.White},
		{"horizontal", mathutil.Vec3{0, 0, -1}, 1, colour.New(0.75, 0.875, 1)},
		{"depth exhausted", mathutil.Vec3{0, 1, 0}, 0, colour.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Resolve(ray.New(mathutil.Vec3{}, tt.dir), tt.depth)
			if !colourClose(got, tt.expected, 1e-6) {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

// twoBandMap is red on the upper half and blue on the lower half.
func twoBandMap() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{255, 0, 0, 255})
		img.SetNRGBA(x, 1, color.NRGBA{0, 0, 255, 255})
	}
	return img
}

func TestEnvironmentMap(t *testing.T) {
	env := EnvironmentMap{Tex: twoBandMap()}
	tests := []struct {
		name     string
		dir      mathutil.Vec3
		depth    int
		expected colour.Colour
	}{
		{"up samples top row", mathutil.Vec3{0, 1, 0}, 5, colour.New(1, 0, 0)},
		{"down samples bottom row", mathutil.Vec3{0, -1, 0}, 5, colour.New(0, 0, 1)},
		{"horizon blends rows", mathutil.Vec3{0, 0, -1}, 5, colour.New(0.5, 0, 0.5)},
		{"depth exhausted", mathutil.Vec3{0, 1, 0}, 0, colour.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := env.Resolve(ray.New(mathutil.Vec3{}, tt.dir), tt.depth)
			if !colourClose(got, tt.expected, 1e-5) {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestSampleTexture_WrapsU(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})

	a := SampleTexture(img, 0.25, 0)
	b := SampleTexture(img, 1.25, 0)
	c := SampleTexture(img, -0.75, 0)
	if a != b || a != c {
		t.Errorf("Expected wrapped samples to match: %+v %+v %+v", a, b, c)
	}
}

func TestFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.PutPixel(2, 1, 10, 20, 30)
	fb.PutPixel(3, 0, 1, 1, 1)  // out of bounds
	fb.PutPixel(-1, 0, 1, 1, 1) // out of bounds

	if r, g, b := fb.At(2, 1); r != 10 || g != 20 || b != 30 {
		t.Errorf("Expected (10,20,30), got (%d,%d,%d)", r, g, b)
	}

	img := fb.Image()
	if got := img.RGBAAt(2, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("Image pixel = %+v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected opaque black, got %+v", got)
	}
}
