package core

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrEmptyRange is returned when a random draw is requested over an empty range.
var ErrEmptyRange = errors.New("core: empty random range")

// RandomSource yields a uniform random integer r with low <= r < high.
// It is the only source of nondeterminism the engine uses.
type RandomSource interface {
	RandomRange(low, high int) (int, error)
}

// Random is a RandomSource backed by a seeded math/rand generator.
// It is safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// RandomRange returns a uniform value in [low, high).
func (r *Random) RandomRange(low, high int) (int, error) {
	if high <= low {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, low, high)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return low + r.rng.Intn(high-low), nil
}

// Sequence is a deterministic RandomSource that replays a fixed list of values.
// Each value is reduced into the requested range, and the list wraps around
// when exhausted. An empty Sequence always yields low.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
	calls  int
}

// NewSequence creates a Sequence that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// RandomRange returns the next value of the sequence mapped into [low, high).
func (s *Sequence) RandomRange(low, high int) (int, error) {
	if high <= low {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, low, high)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if len(s.values) == 0 {
		return low, nil
	}
	v := s.values[s.next%len(s.values)]
	s.next++

	span := high - low
	v %= span
	if v < 0 {
		v += span
	}
	return low + v, nil
}

// Calls returns how many successful draws have been made.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
