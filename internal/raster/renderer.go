package raster

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"raycast-renderer/internal/batch"
	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/colour"
	"raycast-renderer/internal/random"
)

// ErrInvalidOptions is wrapped by every validation error from New.
var ErrInvalidOptions = errors.New("raster: invalid options")

// Options configures a Renderer. Immutable for the duration of a render.
type Options struct {
	// Camera is the source of all rays.
	Camera *camera.Camera

	// Image dimensions in pixels; both must be at least 2.
	ImageWidth  int
	ImageHeight int

	// SamplesPerPixel for anti-aliasing.
	SamplesPerPixel int
	// MaxDepth is the bounce budget handed to the resolver.
	MaxDepth int

	// Resolver turns rays into colours. Defaults to DefaultSky().
	Resolver Resolver

	// Workers is the number of goroutines rendering rows (default: NumCPU).
	Workers int
	// Seed for the per-row random sources. Output is identical for a given
	// seed regardless of Workers.
	Seed uint64
}

// Stats summarises a finished render.
type Stats struct {
	Pixels  int
	Samples int
	Elapsed time.Duration
}

// Renderer casts jittered camera rays and averages them per pixel.
type Renderer struct {
	opts Options
}

// New validates opts and fills defaults.
func New(opts Options) (*Renderer, error) {
	if opts.Camera == nil {
		return nil, fmt.Errorf("%w: nil camera", ErrInvalidOptions)
	}
	if opts.ImageWidth < 2 || opts.ImageHeight < 2 {
		return nil, fmt.Errorf("%w: image size %dx%d (minimum 2x2)", ErrInvalidOptions, opts.ImageWidth, opts.ImageHeight)
	}
	if opts.SamplesPerPixel < 1 {
		return nil, fmt.Errorf("%w: samples per pixel %d", ErrInvalidOptions, opts.SamplesPerPixel)
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: max depth %d", ErrInvalidOptions, opts.MaxDepth)
	}
	if opts.Resolver == nil {
		opts.Resolver = DefaultSky()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{opts: opts}, nil
}

// Render fills target with every pixel of the image. Row 0 of the target is
// the top of the viewport (highest t). Rows are rendered in parallel, so
// target must accept concurrent PutPixel calls for distinct pixels.
func (r *Renderer) Render(target Target) Stats {
	w, h := r.opts.ImageWidth, r.opts.ImageHeight
	log := Logger()
	log.Info("render started", "width", w, "height", h, "spp", r.opts.SamplesPerPixel)
	log.Debug("render setup",
		"workers", r.opts.Workers,
		"seed", r.opts.Seed,
		"max_depth", r.opts.MaxDepth,
		"resolver", fmt.Sprintf("%T", r.opts.Resolver))

	start := time.Now()
	batch.Run(batch.Config{
		Workers: r.opts.Workers,
		Progress: func(done, total int, elapsed time.Duration) {
			log.Info("render progress", "rows", done, "total", total, "elapsed", elapsed.Round(time.Millisecond))
		},
	}, h, func(j int) {
		r.renderRow(target, j)
	})

	stats := Stats{
		Pixels:  w * h,
		Samples: w * h * r.opts.SamplesPerPixel,
		Elapsed: time.Since(start),
	}
	log.Info("render finished", slog.Int("samples", stats.Samples), slog.Duration("elapsed", stats.Elapsed))
	return stats
}

// renderRow renders viewport row j (j = 0 is the bottom) into image row H-1-j.
func (r *Renderer) renderRow(target Target, j int) {
	src := random.NewPCG(r.opts.Seed, uint64(j))
	jRev := r.opts.ImageHeight - 1 - j
	for i := 0; i < r.opts.ImageWidth; i++ {
		c := r.renderPixelAA(float32(i), float32(j), src)
		red, green, blue := c.ToBytes()
		target.PutPixel(i, jRev, red, green, blue)
	}
}

// renderPixelAA averages SamplesPerPixel jittered samples and gamma-corrects.
func (r *Renderer) renderPixelAA(i, j float32, src random.Source) colour.Colour {
	sum := colour.Black
	for n := 0; n < r.opts.SamplesPerPixel; n++ {
		x := i + src.Uniform(0, 1)
		y := j + src.Uniform(0, 1)
		sum = sum.Add(r.renderSample(x, y, src))
	}
	avg := sum.Div(float32(r.opts.SamplesPerPixel))
	return avg.Sqrt()
}

// renderSample maps pixel-space (x, y) to viewport (s, t) and resolves one ray.
func (r *Renderer) renderSample(x, y float32, src random.Source) colour.Colour {
	s := x / float32(r.opts.ImageWidth-1)
	t := y / float32(r.opts.ImageHeight-1)
	return r.opts.Resolver.Resolve(r.opts.Camera.CastRay(s, t, src), r.opts.MaxDepth)
}
