package core

import "math/rand"

// Rand is the uniform integer source consumed by the game.
type Rand interface {
	// IntRange returns a uniformly distributed integer in [lo, hi).
	IntRange(lo, hi int) int
}

type mathRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by math/rand with the given seed.
func NewRand(seed int64) Rand {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.r.Intn(hi-lo)
}
