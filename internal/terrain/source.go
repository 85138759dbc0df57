package terrain

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform random values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source for the given seed.
// Equal seeds produce equal sequences.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromTime returns a seed derived from the wall clock.
func SeedFromTime() uint64 {
	return uint64(time.Now().UnixNano())
}
