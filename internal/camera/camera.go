// Package camera derives per-pixel rays from a camera pose and a thin-lens model.
package camera

import (
	"errors"
	"fmt"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/random"
	"raycast-renderer/internal/ray"
)

var (
	// ErrDegenerateView is returned when LookFrom and LookAt coincide.
	ErrDegenerateView = errors.New("camera: look_from equals look_at")
	// ErrParallelUp is returned when Up is zero or parallel to the view direction.
	ErrParallelUp = errors.New("camera: up vector is parallel to view direction")
	// ErrInvalidLens is returned for out-of-range viewport or lens parameters.
	ErrInvalidLens = errors.New("camera: invalid lens parameters")
)

// Options configures a Camera.
type Options struct {
	LookFrom mathutil.Vec3 `json:"look_from"`
	LookAt   mathutil.Vec3 `json:"look_at"`
	Up       mathutil.Vec3 `json:"up"`

	AspectRatio float32 `json:"aspect_ratio"`
	// VerticalFOV is in degrees.
	VerticalFOV float32 `json:"vertical_fov"`

	Aperture      float32 `json:"aperture"`
	FocusDistance float32 `json:"focus_distance"`
}

// Camera is immutable after New and safe for concurrent CastRay calls as long
// as each caller supplies its own random.Source.
type Camera struct {
	u, v, w mathutil.Vec3

	origin     mathutil.Vec3
	horizontal mathutil.Vec3
	vertical   mathutil.Vec3
	lowerLeft  mathutil.Vec3

	lensRadius float32
}

// New builds the orthonormal basis and viewport geometry for opts.
func New(opts Options) (*Camera, error) {
	if opts.AspectRatio <= 0 || opts.FocusDistance <= 0 || opts.Aperture < 0 ||
		opts.VerticalFOV <= 0 || opts.VerticalFOV >= 180 {
		return nil, fmt.Errorf("%w: aspect=%g fov=%g aperture=%g focus=%g",
			ErrInvalidLens, opts.AspectRatio, opts.VerticalFOV, opts.Aperture, opts.FocusDistance)
	}

	view := opts.LookFrom.Sub(opts.LookAt)
	if view.IsZero(mathutil.Epsilon) {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateView, opts.LookFrom)
	}
	w := view.Normalize()

	side := opts.Up.Cross(w)
	if side.IsZero(mathutil.Epsilon) {
		return nil, fmt.Errorf("%w: up=%v view=%v", ErrParallelUp, opts.Up, w)
	}
	u := side.Normalize()
	v := w.Cross(u)

	theta := mathutil.Deg2Rad(opts.VerticalFOV)
	vpHeight := 2 * mathutil.Tan(theta/2)
	vpWidth := opts.AspectRatio * vpHeight

	origin := opts.LookFrom
	horizontal := u.Scale(vpWidth).Scale(opts.FocusDistance)
	vertical := v.Scale(vpHeight).Scale(opts.FocusDistance)
	lowerLeft := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(w.Scale(opts.FocusDistance))

	return &Camera{
		u:          u,
		v:          v,
		w:          w,
		origin:     origin,
		horizontal: horizontal,
		vertical:   vertical,
		lowerLeft:  lowerLeft,
		lensRadius: opts.Aperture / 2,
	}, nil
}

// CastRay returns a ray through viewport coordinate (s, t), both nominally in
// [0, 1] with (0, 0) at the lower-left corner. The origin is jittered across
// the lens disk using src.
func (c *Camera) CastRay(s, t float32, src random.Source) ray.Ray {
	rd := random.InUnitDisk(src).Scale(c.lensRadius)
	offset := c.u.Scale(rd.X()).Add(c.v.Scale(rd.Y()))

	dir := c.lowerLeft.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t)).
		Sub(c.origin).
		Sub(offset)

	return ray.New(c.origin.Add(offset), dir)
}

func (c *Camera) Origin() mathutil.Vec3 { return c.origin }

// Basis returns the camera frame; the camera looks down -w.
func (c *Camera) Basis() (u, v, w mathutil.Vec3) { return c.u, c.v, c.w }

func (c *Camera) LensRadius() float32 { return c.lensRadius }
