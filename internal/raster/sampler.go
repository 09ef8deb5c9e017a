package raster

import (
	"image"

	"raycast-renderer/internal/colour"
)

// Texels are decoded with the same gamma (2.0) the renderer encodes with, so a
// background seen head-on reproduces its source bytes.
var byteToLinear [256]float32

func init() {
	for i := 0; i < 256; i++ {
		c := float32(i) / 255
		byteToLinear[i] = c * c
	}
}

// SampleTexture performs bilinear filtering, wrapping u and clamping v.
// Returns a linear colour. Accesses tex.Pix directly for performance.
func SampleTexture(tex *image.NRGBA, u, v float64) colour.Colour {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return colour.Black
	}

	// Wrap U, clamp V
	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := y0 + 1
	if y1 >= h {
		y1 = h - 1
	}
	dx := float32(fx - float64(x0))
	dy := float32(fy - float64(y0))

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	texel := func(c int) float32 {
		return byteToLinear[pix[i00+c]]*w00 + byteToLinear[pix[i10+c]]*w10 +
			byteToLinear[pix[i01+c]]*w01 + byteToLinear[pix[i11+c]]*w11
	}
	return colour.New(texel(0), texel(1), texel(2))
}
