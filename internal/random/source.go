// Package random provides the explicitly passed random sources used by the
// camera and the sampling loop.
package random

import "math/rand/v2"

// Source draws uniform float32 values in [lo, hi).
type Source interface {
	Uniform(lo, hi float32) float32
}

// PCG is a Source backed by a PCG generator. It is not safe for concurrent
// use; give each worker or row its own instance.
type PCG struct {
	rng *rand.Rand
}

// NewPCG returns a deterministic source for the given seed and stream.
func NewPCG(seed, stream uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed, stream))}
}

func (p *PCG) Uniform(lo, hi float32) float32 {
	return lo + p.rng.Float32()*(hi-lo)
}
