package encode

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// fill writes a deterministic gradient so every pixel is distinct.
func fill(e *Encoder, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e.PutPixel(x, y, uint8(x*40), uint8(y*60), uint8(255-x*20-y*10))
		}
	}
}

func decodeFile(t *testing.T, path string, decode func(io.Reader) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestSave_LosslessRoundTrip(t *testing.T) {
	const w, h = 5, 3
	dir := t.TempDir()

	tests := []struct {
		file   string
		decode func(io.Reader) (image.Image, error)
	}{
		{"out.png", png.Decode},
		{"out.webp", webp.Decode},
		{"out.tga", tga.Decode},
		{"out.bmp", bmp.Decode},
		{"out.tiff", tiff.Decode},
		{"nested/dir/out.PNG", png.Decode},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			e := New(path, w, h, Options{})
			fill(e, w, h)
			if err := e.Save(); err != nil {
				t.Fatalf("Save: %v", err)
			}

			img := decodeFile(t, path, tt.decode)
			if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
				t.Fatalf("bounds = %v", img.Bounds())
			}
			min := img.Bounds().Min
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					r, g, b, _ := img.At(min.X+x, min.Y+y).RGBA()
					er, eg, eb := uint8(x*40), uint8(y*60), uint8(255-x*20-y*10)
					if uint8(r>>8) != er || uint8(g>>8) != eg || uint8(b>>8) != eb {
						t.Fatalf("(%d,%d) = (%d,%d,%d), expected (%d,%d,%d)",
							x, y, r>>8, g>>8, b>>8, er, eg, eb)
					}
				}
			}
		})
	}
}

func TestSave_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.jpg")
	e := New(path, 16, 8, Options{Quality: 95})
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			e.PutPixel(x, y, 128, 192, 255)
		}
	}
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	img := decodeFile(t, path, jpeg.Decode)
	if img.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	r, g, b, _ := img.At(8, 4).RGBA()
	near := func(got uint32, want int) bool {
		d := int(got>>8) - want
		return d >= -4 && d <= 4
	}
	if !near(r, 128) || !near(g, 192) || !near(b, 255) {
		t.Errorf("centre pixel = (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestSave_Downsamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	e := New(path, 8, 6, Options{TargetWidth: 4, TargetHeight: 3})
	fill(e, 8, 6)
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	img := decodeFile(t, path, png.Decode)
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v, expected 4x3", img.Bounds())
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.gif")
	err := New(path, 2, 2, Options{}).Save()
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Expected no file to be created")
	}
	if Supported(path) {
		t.Error("Supported(.gif) = true")
	}
	if !Supported("a/b.JPEG") {
		t.Error("Supported(.JPEG) = false")
	}
}

func TestSave_CreateFails(t *testing.T) {
	// A directory occupying the output path makes os.Create fail.
	path := filepath.Join(t.TempDir(), "taken.png")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	if err := New(path, 2, 2, Options{}).Save(); err == nil {
		t.Error("Expected an error")
	}
}
