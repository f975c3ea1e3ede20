// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand generator so every run of the
// simulation can be reproduced from its seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a generator from the given seed; 0 seeds from the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed this generator was created with.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int { return s.rng.Intn(n) }

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 { return s.rng.Float64() }
