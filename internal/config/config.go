package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/colour"
	"raycast-renderer/internal/encode"
	"raycast-renderer/internal/mathutil"
)

// ErrInvalid is wrapped by every error from Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	Output     string `json:"output"`
	Manifest   string `json:"manifest"`
	Background string `json:"background"`

	// Render settings
	ImageHeight     int         `json:"image_height"`
	ImageWidth      int         `json:"image_width"`
	SamplesPerPixel int         `json:"samples_per_pixel"`
	MaxDepth        *int        `json:"max_depth"`
	Supersample     int         `json:"supersample"`
	Quality         int         `json:"quality"`
	Workers         int         `json:"workers"`
	Seed            uint64      `json:"seed"`
	SkyHorizon      *[3]float32 `json:"sky_horizon"`
	SkyZenith       *[3]float32 `json:"sky_zenith"`

	Camera Camera `json:"camera"`
}

// Camera is the JSON form of camera.Options. Nil fields take defaults, so a
// zero aperture or an origin-placed camera can be expressed explicitly.
type Camera struct {
	LookFrom      *mathutil.Vec3 `json:"look_from"`
	LookAt        *mathutil.Vec3 `json:"look_at"`
	Up            *mathutil.Vec3 `json:"up"`
	AspectRatio   float32        `json:"aspect_ratio"`
	VerticalFOV   float32        `json:"vertical_fov"`
	Aperture      *float32       `json:"aperture"`
	FocusDistance float32        `json:"focus_distance"`
}

// Defaults of the reference render.
const (
	DefaultAspectRatio   = float32(16.0 / 9.0)
	DefaultImageHeight   = 720
	DefaultSamples       = 1
	DefaultMaxDepth      = 50
	DefaultVerticalFOV   = 90
	DefaultAperture      = 0.1
	DefaultFocusDistance = 1.0
	DefaultOutput        = "./dist/image.jpg"
	DefaultQuality       = 90
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not set".
type Flags struct {
	Output      string
	Manifest    string
	Background  string
	Height      int
	Samples     int
	Depth       *int
	Supersample int
	Quality     int
	Workers     int
	Seed        uint64
}

// Resolve applies flag overrides and fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Manifest != "" {
		c.Manifest = flags.Manifest
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Height > 0 {
		c.ImageHeight = flags.Height
		c.ImageWidth = 0
	}
	if flags.Samples > 0 {
		c.SamplesPerPixel = flags.Samples
	}
	if flags.Depth != nil {
		d := *flags.Depth
		c.MaxDepth = &d
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	// Camera defaults
	cam := &c.Camera
	if cam.LookFrom == nil {
		cam.LookFrom = &mathutil.Vec3{0, 0, 0}
	}
	if cam.LookAt == nil {
		cam.LookAt = &mathutil.Vec3{0, 0, -1}
	}
	if cam.Up == nil {
		cam.Up = &mathutil.Vec3{0, 1, 0}
	}
	if cam.AspectRatio <= 0 {
		cam.AspectRatio = DefaultAspectRatio
	}
	if cam.VerticalFOV <= 0 {
		cam.VerticalFOV = DefaultVerticalFOV
	}
	if cam.Aperture == nil {
		a := float32(DefaultAperture)
		cam.Aperture = &a
	}
	if cam.FocusDistance <= 0 {
		cam.FocusDistance = DefaultFocusDistance
	}

	// Defaults for render settings
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.ImageHeight <= 0 {
		c.ImageHeight = DefaultImageHeight
	}
	if c.ImageWidth <= 0 {
		c.ImageWidth = int(float32(c.ImageHeight) * cam.AspectRatio)
	}
	if c.SamplesPerPixel <= 0 {
		c.SamplesPerPixel = DefaultSamples
	}
	if c.MaxDepth == nil {
		d := DefaultMaxDepth
		c.MaxDepth = &d
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Quality <= 0 {
		c.Quality = DefaultQuality
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	if c.SkyHorizon == nil {
		c.SkyHorizon = &[3]float32{colour.White.R, colour.White.G, colour.White.B}
	}
	if c.SkyZenith == nil {
		c.SkyZenith = &[3]float32{colour.SkyBlue.R, colour.SkyBlue.G, colour.SkyBlue.B}
	}
	if c.Manifest == "" {
		c.Manifest = filepath.Join(filepath.Dir(c.Output), "manifest.json")
	}
}

// Validate checks a resolved config. Camera geometry is checked by camera.New.
func (c *Config) Validate() error {
	switch {
	case c.ImageWidth < 2 || c.ImageHeight < 2:
		return fmt.Errorf("%w: image size %dx%d (minimum 2x2)", ErrInvalid, c.ImageWidth, c.ImageHeight)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples_per_pixel %d", ErrInvalid, c.SamplesPerPixel)
	case c.MaxDepth == nil || *c.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth must be >= 0", ErrInvalid)
	case c.Supersample < 1:
		return fmt.Errorf("%w: supersample %d", ErrInvalid, c.Supersample)
	case c.Quality < 1 || c.Quality > 100:
		return fmt.Errorf("%w: quality %d (1-100)", ErrInvalid, c.Quality)
	case !encode.Supported(c.Output):
		return fmt.Errorf("%w: output %s: %w", ErrInvalid, c.Output, encode.ErrUnsupportedFormat)
	}
	return nil
}

// CameraOptions converts the resolved camera section.
func (c *Config) CameraOptions() camera.Options {
	return camera.Options{
		LookFrom:      *c.Camera.LookFrom,
		LookAt:        *c.Camera.LookAt,
		Up:            *c.Camera.Up,
		AspectRatio:   c.Camera.AspectRatio,
		VerticalFOV:   c.Camera.VerticalFOV,
		Aperture:      *c.Camera.Aperture,
		FocusDistance: c.Camera.FocusDistance,
	}
}

// Sky returns the gradient endpoints.
func (c *Config) Sky() (horizon, zenith colour.Colour) {
	h, z := *c.SkyHorizon, *c.SkyZenith
	return colour.New(h[0], h[1], h[2]), colour.New(z[0], z[1], z[2])
}
