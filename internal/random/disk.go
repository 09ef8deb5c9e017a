package random

import "raycast-renderer/internal/mathutil"

// InUnitDisk returns a point (x, y, 0) with x²+y² < 1 by rejection sampling
// over [-1,1)². There is no iteration cap: src must be uniform over the square
// or the loop may never terminate. Expected draws per call are 4/π.
func InUnitDisk(src Source) mathutil.Vec3 {
	for {
		p := mathutil.Vec3{src.Uniform(-1, 1), src.Uniform(-1, 1), 0}
		if p.DotSelf() < 1 {
			return p
		}
	}
}
