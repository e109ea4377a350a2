// Package randutil builds the seeded generators used for shuffling.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Equal seeds
// always produce equal sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromSeed returns a deterministic generator for a non-negative seed and a
// time-seeded one otherwise, along with the seed actually used.
func FromSeed(seed int64) (*rand.Rand, int64) {
	if seed < 0 {
		seed = TimeSeed()
	}
	return New(seed), seed
}

// TimeSeed returns a non-negative seed derived from the wall clock
func TimeSeed() int64 {
	return time.Now().UnixNano() & (1<<63 - 1)
}

// Child draws a seed from parent and returns an independent generator. The
// parent is advanced exactly once so children are reproducible in order.
func Child(parent *rand.Rand) *rand.Rand {
	return New(parent.Int64())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
