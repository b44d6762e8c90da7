package util

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded random source. Pass 0 for a time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
