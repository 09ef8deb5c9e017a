// Package encode writes rendered pixels to a raster image file.
package encode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"raycast-renderer/internal/postprocess"
	"raycast-renderer/internal/raster"
)

// Options tunes the written file.
type Options struct {
	// Quality for lossy formats (JPEG), 1-100. Defaults to 90.
	Quality int
	// TargetWidth and TargetHeight downsample the buffer before encoding when
	// both are set and smaller than the buffer (supersampling).
	TargetWidth  int
	TargetHeight int
}

// Encoder buffers pixels in memory until Save.
type Encoder struct {
	path string
	opts Options
	fb   *raster.FrameBuffer
}

// New returns an encoder for a width x height image written to path. The
// format is chosen from the file extension at Save time.
func New(path string, width, height int, opts Options) *Encoder {
	if opts.Quality <= 0 {
		opts.Quality = 90
	}
	return &Encoder{
		path: path,
		opts: opts,
		fb:   raster.NewFrameBuffer(width, height),
	}
}

// PutPixel stores one pixel; (0, 0) is the top-left corner. Coordinates
// outside the image are ignored. Safe for concurrent use on distinct pixels.
func (e *Encoder) PutPixel(x, y int, r, g, b uint8) {
	e.fb.PutPixel(x, y, r, g, b)
}

// Path returns the output path.
func (e *Encoder) Path() string { return e.path }

// Save writes the image file, creating parent directories as needed. The file
// is always closed; a close error is reported alongside any encode error.
func (e *Encoder) Save() (err error) {
	enc, err := formatFor(e.path)
	if err != nil {
		return err
	}

	img := e.fb.Image()
	if e.opts.TargetWidth > 0 && e.opts.TargetHeight > 0 {
		img = postprocess.Downsample(img, e.opts.TargetWidth, e.opts.TargetHeight)
	}

	if err := os.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return fmt.Errorf("encode: mkdir %s: %w", e.path, err)
	}

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", e.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("encode: close %s: %w", e.path, cerr))
		}
	}()

	if err := enc(f, img, e.opts); err != nil {
		return fmt.Errorf("encode: %s: %w", e.path, err)
	}
	return nil
}
