// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps the standard random generator so the whole game can
// run on a predictable (seeded) source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
