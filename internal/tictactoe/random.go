package tictactoe

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the only source of nondeterminism in the engine.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource - returns a goroutine-safe Rand. A zero seed picks one from the clock.
func NewRandomSource(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &lockedRand{rng: rand.New(rand.NewSource(seed))} //nolint: gosec // game moves, not crypto
}

func (that *lockedRand) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}
