package fake

import "sync"

// Rand replays a scripted sequence of picks, each reduced modulo n.
// Once the script runs out it always picks 0.
type Rand struct {
	mu    sync.Mutex
	picks []int
	calls []int
}

func NewRand(picks ...int) *Rand {
	return &Rand{picks: picks}
}

func (that *Rand) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.calls = append(that.calls, n)

	if len(that.picks) == 0 {
		return 0
	}

	pick := that.picks[0]
	that.picks = that.picks[1:]

	return pick % n
}

// Calls - returns the n passed to every Intn call so far.
func (that *Rand) Calls() []int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]int(nil), that.calls...)
}
