package config

import (
	"math/rand"
	"time"
)

// NewSeededRNG creates the random source shared by a game session.
// A zero seed uses the current time; the seed actually used is returned so a
// session can be replayed.
func NewSeededRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
