// Package snake implements the grid snake simulation engine.
//
// The engine owns all mutable game state and exposes a small surface:
// construct a board, queue a direction change, advance one tick and query
// whether a cell is on the board. Rendering, input and timing belong to the
// caller.
package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snake-engine/internal/core"
)

// ErrInvalidDimensions is returned when a board cannot hold a snake and its food.
var ErrInvalidDimensions = errors.New("snake: invalid board dimensions")

// Outcome describes why a game ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Game still running
	OutcomeWall                     // Head left the board
	OutcomeSelf                     // Head ran into the body
	OutcomeBoardFull                // No free cell left for food
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Game is a single snake simulation on a fixed-size board.
// It is not safe for concurrent use.
type Game struct {
	width  int
	height int
	rng    core.RandomSource
	tick   uint64

	// Snake state
	snake     []Position // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move

	food     Position
	gameOver bool
	outcome  Outcome
}

// New creates a game on a width x height board.
//
// The snake starts as a single segment at (width-2, height/2) heading left,
// with food at (min(2, width-1), height/2). On boards where those cells
// coincide the food is moved to a random free cell instead. If rng is nil a
// time-seeded source is used.
func New(width, height int, rng core.RandomSource) (*Game, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if rng == nil {
		rng = core.NewRandom(time.Now().UnixNano())
	}

	g := &Game{
		width:     width,
		height:    height,
		rng:       rng,
		snake:     []Position{{X: max(width-2, 0), Y: height / 2}},
		direction: DirLeft,
		nextDir:   DirLeft,
		food:      Position{X: min(2, width-1), Y: height / 2},
	}

	if g.isSnakeAt(g.food) {
		free := g.freeCells(nil)
		if len(free) == 0 {
			return nil, fmt.Errorf("%w: %dx%d has no room for food", ErrInvalidDimensions, width, height)
		}
		food, err := g.pick(free)
		if err != nil {
			return nil, err
		}
		g.food = food
	}

	return g, nil
}

// NewFromConfig creates a game from a runtime config, seeding the random
// source with cfg.Seed.
func NewFromConfig(cfg core.RuntimeConfig) (*Game, error) {
	return New(cfg.Width, cfg.Height, core.NewRandom(cfg.Seed))
}

// ChangeDirection buffers d as the heading for the next tick.
// Requests equal to the current heading or its reverse are ignored, as are
// all requests once the game is over. Only the latest accepted request is kept.
func (g *Game) ChangeDirection(d Direction) {
	if g.gameOver || !d.Valid() {
		return
	}
	if d == g.direction || d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// IsValid reports whether p lies on the board.
func (g *Game) IsValid(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Tick advances the simulation by one step.
//
// The only error is a misbehaving random source during food placement; in
// that case the game is left exactly as it was before the call.
func (g *Game) Tick() error {
	if g.gameOver || len(g.snake) == 0 {
		return nil
	}

	// Apply buffered direction
	dir := g.nextDir
	newHead := g.snake[0].Step(dir)

	// The tail has not moved yet, so entering its cell is a collision.
	if !g.IsValid(newHead) {
		g.advance(dir)
		g.end(OutcomeWall)
		return nil
	}
	if g.isSnakeAt(newHead) {
		g.advance(dir)
		g.end(OutcomeSelf)
		return nil
	}

	if newHead != g.food {
		g.advance(dir)
		copy(g.snake[1:], g.snake[:len(g.snake)-1])
		g.snake[0] = newHead
		return nil
	}

	// Eating: the snake grows, so the candidate head is occupied too.
	free := g.freeCells(&newHead)
	if len(free) == 0 {
		g.advance(dir)
		g.end(OutcomeBoardFull)
		return nil
	}
	food, err := g.pick(free)
	if err != nil {
		return err
	}
	g.advance(dir)
	g.snake = append([]Position{newHead}, g.snake...)
	g.food = food
	return nil
}

// advance commits the heading of a tick that moved the snake or ended the game.
func (g *Game) advance(dir Direction) {
	g.direction = dir
	g.tick++
}

func (g *Game) end(o Outcome) {
	g.gameOver = true
	g.outcome = o
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Position) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// freeCells lists unoccupied cells in row-major order. extra, if non-nil, is
// treated as occupied in addition to the body.
func (g *Game) freeCells(extra *Position) []Position {
	occupied := make([]bool, g.width*g.height)
	mark := func(p Position) {
		if g.IsValid(p) {
			occupied[p.Y*g.width+p.X] = true
		}
	}
	for _, seg := range g.snake {
		mark(seg)
	}
	if extra != nil {
		mark(*extra)
	}

	free := make([]Position, 0, len(occupied))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !occupied[y*g.width+x] {
				free = append(free, Position{X: x, Y: y})
			}
		}
	}
	return free
}

// pick draws one cell uniformly from cells.
func (g *Game) pick(cells []Position) (Position, error) {
	idx, err := g.rng.RandomRange(0, len(cells))
	if err != nil {
		return Position{}, fmt.Errorf("snake: place food: %w", err)
	}
	if idx < 0 || idx >= len(cells) {
		return Position{}, fmt.Errorf("snake: place food: random index %d outside [0, %d)", idx, len(cells))
	}
	return cells[idx], nil
}

// Width returns the board width.
func (g *Game) Width() int { return g.width }

// Height returns the board height.
func (g *Game) Height() int { return g.height }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Position {
	return append([]Position(nil), g.snake...)
}

// Head returns the head position. ok is false if the body is empty.
func (g *Game) Head() (head Position, ok bool) {
	if len(g.snake) == 0 {
		return Position{}, false
	}
	return g.snake[0], true
}

// Len returns the number of body segments.
func (g *Game) Len() int { return len(g.snake) }

// Food returns the current food position.
func (g *Game) Food() Position { return g.food }

// Direction returns the heading used by the last tick.
func (g *Game) Direction() Direction { return g.direction }

// PendingDirection returns the heading the next tick will use.
func (g *Game) PendingDirection() Direction { return g.nextDir }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Outcome returns why the game ended, or OutcomeNone while it is running.
func (g *Game) Outcome() Outcome { return g.outcome }

// Ticks returns how many ticks have advanced the snake or ended the game.
func (g *Game) Ticks() uint64 { return g.tick }
