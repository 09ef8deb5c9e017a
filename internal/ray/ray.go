package ray

import "raycast-renderer/internal/mathutil"

// Ray is a half-line with a unit-length direction.
type Ray struct {
	Origin mathutil.Vec3
	Dir    mathutil.Vec3
}

// New normalizes dir before storing it. dir must be non-zero.
func New(origin, dir mathutil.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mathutil.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
