package snake

// StateType represents the current game state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the externally visible game state after a tick.
// It is what a renderer or pilot reads; mutating it does not affect the game.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Snake   []Position // Head first
	Food    Position
	Dir     Direction
	State   StateType
	Outcome Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}
	return Snapshot{
		Tick:    g.tick,
		Width:   g.width,
		Height:  g.height,
		Snake:   g.Snake(),
		Food:    g.food,
		Dir:     g.direction,
		State:   state,
		Outcome: g.outcome,
	}
}

// Head returns the head position, or the zero Position for an empty body.
func (s Snapshot) Head() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}
	return s.Snake[0]
}

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// IsValid reports whether p lies on the snapshot's board.
func (s Snapshot) IsValid(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Occupied reports whether any body segment covers p. The tail counts: the
// engine checks collisions before the tail moves.
func (s Snapshot) Occupied(p Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}
