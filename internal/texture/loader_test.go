package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
)

func writeImage(t *testing.T, path string, encode func(*os.File, image.Image) error, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func sampleImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(2, 1, color.RGBA{10, 200, 30, 255})
	return img
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		file   string
		encode func(*os.File, image.Image) error
	}{
		{"png", "bg.png", func(f *os.File, m image.Image) error { return png.Encode(f, m) }},
		{"tga", "bg.tga", func(f *os.File, m image.Image) error { return tga.Encode(f, m) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeImage(t, path, tt.encode, sampleImage())

			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 3, 2) {
				t.Fatalf("bounds = %v", img.Bounds())
			}
			if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
				t.Errorf("(0,0) = %+v", got)
			}
			if got := img.NRGBAAt(2, 1); got != (color.NRGBA{10, 200, 30, 255}) {
				t.Errorf("(2,1) = %+v", got)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(junk); err == nil {
		t.Error("Expected decode error")
	}

	if _, err := Load(filepath.Join(dir, "bg.gif")); err == nil {
		t.Error("Expected unknown extension error")
	}
}
