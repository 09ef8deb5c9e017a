package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// It is used both as a point and as a direction.
type Vec3 [3]float32

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Sub is a.Add(b.Neg()).
func (a Vec3) Sub(b Vec3) Vec3 {
	return a.Add(b.Neg())
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div scales by the reciprocal of s.
func (v Vec3) Div(s float32) Vec3 {
	return v.Scale(1 / s)
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// DotSelf returns the squared magnitude.
func (v Vec3) DotSelf() float32 {
	return v.Dot(v)
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.DotSelf())))
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Normalize returns the unit vector pointing along v.
// v must have non-zero length; a zero vector yields NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Len())
}

// IsZero reports whether the squared length is below eps².
func (v Vec3) IsZero(eps float32) bool {
	return v.DotSelf() < eps*eps
}
