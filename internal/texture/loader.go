package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// decoders by lowercase extension. TGA carries no magic number, so formats are
// chosen by name rather than sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".png":  png.Decode,
	".tga":  tga.Decode,
}

// Load reads a JPEG, PNG or TGA file and returns an NRGBA image.
func Load(path string) (*image.NRGBA, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unknown extension: %q", ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA format with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	}
	return dst
}
