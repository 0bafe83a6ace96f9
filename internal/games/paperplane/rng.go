package paperplane

import (
	"math/rand"

	"github.com/vovakirdan/paperplane/internal/core"
)

// Rand is the randomness the level generator draws from.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded generator.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [r.Min, r.Max).
func uniform(rng Rand, r core.Range[float64]) float64 {
	return r.Min + rng.Float64()*r.Len()
}

// intBetween draws an integer from [lo, hi). An empty range yields lo.
func intBetween(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
