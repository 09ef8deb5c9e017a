package raster

import (
	"image"
	"math"

	"raycast-renderer/internal/colour"
	"raycast-renderer/internal/ray"
)

// Resolver maps a ray to the colour it carries back to the camera. depth is
// the remaining bounce budget; resolvers must return black when depth < 1.
// Scene intersection plugs in here without touching the sampling loop.
type Resolver interface {
	Resolve(r ray.Ray, depth int) colour.Colour
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(r ray.Ray, depth int) colour.Colour

func (f ResolverFunc) Resolve(r ray.Ray, depth int) colour.Colour {
	return f(r, depth)
}

// SkyGradient blends vertically from Horizon (straight down) to Zenith
// (straight up) based on the ray's y direction.
type SkyGradient struct {
	Horizon colour.Colour
	Zenith  colour.Colour
}

// DefaultSky is the white to sky-blue gradient.
func DefaultSky() SkyGradient {
	return SkyGradient{Horizon: colour.White, Zenith: colour.SkyBlue}
}

func (s SkyGradient) Resolve(r ray.Ray, depth int) colour.Colour {
	if depth < 1 {
		return colour.Black
	}
	t := 0.5 * (r.Dir.Y() + 1)
	return s.Horizon.Lerp(s.Zenith, t)
}

// EnvironmentMap looks up the background in an equirectangular (lat-long)
// image. The -z axis maps to the horizontal centre of the image and +y to the
// top row.
type EnvironmentMap struct {
	Tex *image.NRGBA
}

func (e EnvironmentMap) Resolve(r ray.Ray, depth int) colour.Colour {
	if depth < 1 {
		return colour.Black
	}
	d := r.Dir
	u := 0.5 + math.Atan2(float64(d.X()), float64(-d.Z()))/(2*math.Pi)
	y := math.Max(-1, math.Min(1, float64(d.Y())))
	v := math.Acos(y) / math.Pi
	return SampleTexture(e.Tex, u, v)
}
