package encode

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("encode: unsupported format")

type encodeFunc func(w io.Writer, img image.Image, opts Options) error

var formats = map[string]encodeFunc{
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".png": func(w io.Writer, img image.Image, _ Options) error {
		return png.Encode(w, img)
	},
	// Lossless VP8L; Quality does not apply.
	".webp": func(w io.Writer, img image.Image, _ Options) error {
		return nativewebp.Encode(w, img, nil)
	},
	".tga": func(w io.Writer, img image.Image, _ Options) error {
		return tga.Encode(w, img)
	},
	".bmp": func(w io.Writer, img image.Image, _ Options) error {
		return bmp.Encode(w, img)
	},
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image, opts Options) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.Quality})
}

func encodeTIFF(w io.Writer, img image.Image, _ Options) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

func formatFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := formats[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// Supported reports whether path has an extension Save can write.
func Supported(path string) bool {
	_, err := formatFor(path)
	return err == nil
}
