package ray

import (
	"testing"

	"raycast-renderer/internal/mathutil"
)

func TestNew_NormalizesDirection(t *testing.T) {
	r := New(mathutil.Vec3{1, 2, 3}, mathutil.Vec3{0, 0, -5})
	if r.Dir != (mathutil.Vec3{0, 0, -1}) {
		t.Errorf("Expected unit direction, got %v", r.Dir)
	}
	if r.Origin != (mathutil.Vec3{1, 2, 3}) {
		t.Errorf("Origin changed: %v", r.Origin)
	}
}

func TestRay_At(t *testing.T) {
	r := New(mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 3, 4})
	p := r.At(10)
	expected := mathutil.Vec3{1, 6, 8}
	for k := 0; k < 3; k++ {
		if !mathutil.ApproxEqual(p[k], expected[k], 1e-5) {
			t.Fatalf("Expected %v, got %v", expected, p)
		}
	}
}
