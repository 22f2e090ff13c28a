// Package pilot provides steering strategies that play the snake engine
// without a human at the keyboard.
package pilot

import (
	"github.com/vovakirdan/snake-engine/internal/core"
	"github.com/vovakirdan/snake-engine/internal/games/snake"
	"github.com/vovakirdan/snake-engine/internal/registry"
)

func init() {
	registry.Register("straight", "Never turns; runs into the nearest wall", func(core.RandomSource) registry.Pilot {
		return Straight{}
	})
	registry.Register("greedy", "Heads for the food along the shortest safe step", func(core.RandomSource) registry.Pilot {
		return Greedy{}
	})
	registry.Register("random", "Picks a random safe heading every tick", func(rng core.RandomSource) registry.Pilot {
		return NewRandom(rng)
	})
}

// SafeMoves returns the headings whose next cell is on the board and not
// covered by the body, in declaration order. The reverse of the current
// heading is never returned.
func SafeMoves(s snake.Snapshot) []snake.Direction {
	if len(s.Snake) == 0 {
		return nil
	}
	head := s.Head()
	moves := make([]snake.Direction, 0, len(snake.Directions))
	for _, d := range snake.Directions {
		if d == s.Dir.Opposite() {
			continue
		}
		next := head.Step(d)
		if s.IsValid(next) && !s.Occupied(next) {
			moves = append(moves, d)
		}
	}
	return moves
}

// Straight keeps the current heading.
type Straight struct{}

// Name returns "straight".
func (Straight) Name() string { return "straight" }

// Next returns the current heading.
func (Straight) Next(s snake.Snapshot) snake.Direction { return s.Dir }

// Greedy steps toward the food, breaking ties in favour of the current
// heading. With no safe move it keeps going straight.
type Greedy struct{}

// Name returns "greedy".
func (Greedy) Name() string { return "greedy" }

// Next picks the safe heading that minimises the Manhattan distance to food.
func (Greedy) Next(s snake.Snapshot) snake.Direction {
	moves := SafeMoves(s)
	if len(moves) == 0 {
		return s.Dir
	}

	head := s.Head()
	best := moves[0]
	bestDist := head.Step(best).Manhattan(s.Food)
	for _, d := range moves[1:] {
		dist := head.Step(d).Manhattan(s.Food)
		if dist < bestDist || (dist == bestDist && d == s.Dir) {
			best, bestDist = d, dist
		}
	}
	return best
}

// Random picks uniformly among the safe headings.
type Random struct {
	rng core.RandomSource
}

// NewRandom creates a Random pilot. A nil rng falls back to a fixed seed so
// the pilot stays deterministic.
func NewRandom(rng core.RandomSource) *Random {
	if rng == nil {
		rng = core.NewRandom(1)
	}
	return &Random{rng: rng}
}

// Name returns "random".
func (*Random) Name() string { return "random" }

// Next draws one safe heading; it keeps the current heading when none is safe.
func (r *Random) Next(s snake.Snapshot) snake.Direction {
	moves := SafeMoves(s)
	if len(moves) == 0 {
		return s.Dir
	}
	idx, err := r.rng.RandomRange(0, len(moves))
	if err != nil || idx < 0 || idx >= len(moves) {
		return moves[0]
	}
	return moves[idx]
}
