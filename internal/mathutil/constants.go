package mathutil

import "math"

// Epsilon is the tolerance used for degeneracy checks on camera vectors.
const Epsilon = 1e-6

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float32) float32 {
	return deg * math.Pi / 180
}

// Tan is float32 tangent.
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Sqrt is float32 square root.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// ApproxEqual reports whether |a-b| <= eps.
func ApproxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
