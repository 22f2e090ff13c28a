package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snake-engine/internal/core"
)

// newTestGame builds a game with a preset body, heading and food.
func newTestGame(t *testing.T, w, h int, body []Position, dir Direction, food Position, rng core.RandomSource) *Game {
	t.Helper()
	if rng == nil {
		rng = core.NewRandom(1)
	}
	g, err := New(w, h, rng)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	g.snake = append([]Position(nil), body...)
	g.direction = dir
	g.nextDir = dir
	g.food = food
	return g
}

func mustTick(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
}

func TestNewInitialState(t *testing.T) {
	g, err := New(10, 10, core.NewRandom(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := g.Snake(); len(got) != 1 || got[0] != P(8, 5) {
		t.Errorf("expected snake [(8,5)], got %v", got)
	}
	if g.Direction() != DirLeft || g.PendingDirection() != DirLeft {
		t.Errorf("expected heading left/left, got %v/%v", g.Direction(), g.PendingDirection())
	}
	if g.Food() != P(2, 5) {
		t.Errorf("expected food (2,5), got %v", g.Food())
	}
	if g.GameOver() {
		t.Error("game should not start over")
	}
	if g.Outcome() != OutcomeNone {
		t.Errorf("expected outcome none, got %v", g.Outcome())
	}
}

func TestFirstTickScenario(t *testing.T) {
	g, err := New(10, 10, core.NewRandom(1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	mustTick(t, g)

	if got := g.Snake(); len(got) != 1 || got[0] != P(7, 5) {
		t.Errorf("expected snake [(7,5)], got %v", got)
	}
	if g.GameOver() {
		t.Error("game should still be running")
	}
	if g.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", g.Ticks())
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	cases := [][2]int{{0, 10}, {10, 0}, {0, 0}, {-1, 5}, {1, 1}}
	for _, c := range cases {
		if _, err := New(c[0], c[1], core.NewRandom(1)); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d): expected ErrInvalidDimensions, got %v", c[0], c[1], err)
		}
	}
}

func TestNewNarrowBoards(t *testing.T) {
	// Width 1 clamps the snake to x=0, where the food would also land.
	g, err := New(1, 3, core.NewSequence(1))
	if err != nil {
		t.Fatalf("New(1, 3) failed: %v", err)
	}
	if g.Snake()[0] != P(0, 1) {
		t.Errorf("expected snake at (0,1), got %v", g.Snake()[0])
	}
	if g.Food() != P(0, 2) {
		t.Errorf("expected food moved to (0,2), got %v", g.Food())
	}

	// Width 4 puts snake and food on the same cell as well.
	g, err = New(4, 1, core.NewSequence(0))
	if err != nil {
		t.Fatalf("New(4, 1) failed: %v", err)
	}
	if g.isSnakeAt(g.Food()) {
		t.Errorf("food %v placed on snake %v", g.Food(), g.Snake())
	}

	// Width 2: snake at x=0, food at x=1.
	g, err = New(2, 2, core.NewRandom(1))
	if err != nil {
		t.Fatalf("New(2, 2) failed: %v", err)
	}
	if g.Snake()[0] != P(0, 1) || g.Food() != P(1, 1) {
		t.Errorf("unexpected layout snake=%v food=%v", g.Snake(), g.Food())
	}
}

func TestNewNilRandomSource(t *testing.T) {
	g, err := New(5, 5, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.rng == nil {
		t.Error("expected a default random source")
	}
}

func TestNewFromConfig(t *testing.T) {
	g, err := NewFromConfig(core.RuntimeConfig{Width: 12, Height: 6, Seed: 3})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if g.Width() != 12 || g.Height() != 6 {
		t.Errorf("expected 12x6, got %dx%d", g.Width(), g.Height())
	}
}

func TestIsValid(t *testing.T) {
	g, _ := New(4, 3, core.NewRandom(1))
	valid := []Position{P(0, 0), P(3, 2), P(2, 1)}
	invalid := []Position{P(-1, 0), P(0, -1), P(4, 0), P(0, 3), P(4, 3)}
	for _, p := range valid {
		if !g.IsValid(p) {
			t.Errorf("%v should be valid", p)
		}
	}
	for _, p := range invalid {
		if g.IsValid(p) {
			t.Errorf("%v should be invalid", p)
		}
	}
}

func TestBoundaryCollisionSingleRow(t *testing.T) {
	// 1-row board: heading top leaves the board on the first tick.
	g := newTestGame(t, 5, 1, []Position{P(3, 0)}, DirLeft, P(0, 0), nil)
	g.ChangeDirection(DirTop)
	mustTick(t, g)

	if !g.GameOver() {
		t.Fatal("game should be over after leaving the top edge")
	}
	if g.Outcome() != OutcomeWall {
		t.Errorf("expected wall outcome, got %v", g.Outcome())
	}
	if g.Len() != 1 || g.Snake()[0] != P(3, 0) {
		t.Errorf("snake should be unchanged, got %v", g.Snake())
	}
}

func TestBoundaryCollisionSingleColumn(t *testing.T) {
	g, err := New(1, 4, core.NewSequence(0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Heading left from x=0.
	mustTick(t, g)

	if !g.GameOver() || g.Outcome() != OutcomeWall {
		t.Errorf("expected wall game over, got over=%v outcome=%v", g.GameOver(), g.Outcome())
	}
	if g.Len() != 1 {
		t.Errorf("expected length 1, got %d", g.Len())
	}
}

func TestBoundaryCollisionRightAndBottom(t *testing.T) {
	g := newTestGame(t, 3, 3, []Position{P(2, 1)}, DirRight, P(0, 0), nil)
	mustTick(t, g)
	if g.Outcome() != OutcomeWall {
		t.Errorf("expected wall on right edge, got %v", g.Outcome())
	}

	g = newTestGame(t, 3, 3, []Position{P(1, 2)}, DirBottom, P(0, 0), nil)
	mustTick(t, g)
	if g.Outcome() != OutcomeWall {
		t.Errorf("expected wall on bottom edge, got %v", g.Outcome())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 10, 10, []Position{
		P(5, 5), // Head
		P(5, 6),
		P(6, 6),
		P(6, 5),
		P(6, 4),
	}, DirTop, P(0, 0), nil)

	g.ChangeDirection(DirRight)
	mustTick(t, g)

	if !g.GameOver() {
		t.Fatal("game should be over after self collision")
	}
	if g.Outcome() != OutcomeSelf {
		t.Errorf("expected self outcome, got %v", g.Outcome())
	}
	if g.Len() != 5 {
		t.Errorf("snake should be unchanged, got length %d", g.Len())
	}
}

func TestEnteringTailCellIsCollision(t *testing.T) {
	// A 2x2 loop: the head moves into the cell the tail currently holds.
	g := newTestGame(t, 5, 5, []Position{
		P(1, 1), // Head
		P(2, 1),
		P(2, 2),
		P(1, 2), // Tail
	}, DirLeft, P(4, 4), nil)

	g.ChangeDirection(DirBottom)
	mustTick(t, g)

	if !g.GameOver() || g.Outcome() != OutcomeSelf {
		t.Errorf("moving onto the tail should end the game, got over=%v outcome=%v", g.GameOver(), g.Outcome())
	}
}

func TestDirectionReversalRejected(t *testing.T) {
	g, _ := New(10, 10, core.NewRandom(1))

	g.ChangeDirection(DirRight)
	if g.PendingDirection() != DirLeft {
		t.Errorf("reversal should be ignored, pending is %v", g.PendingDirection())
	}
	mustTick(t, g)

	if g.Snake()[0] != P(7, 5) {
		t.Errorf("snake should keep moving left, head at %v", g.Snake()[0])
	}
	if g.Direction() != DirLeft {
		t.Errorf("expected heading left, got %v", g.Direction())
	}
}

func TestDirectionSameRejected(t *testing.T) {
	g, _ := New(10, 10, core.NewRandom(1))

	g.ChangeDirection(DirTop)
	g.ChangeDirection(DirLeft) // same as current, ignored
	if g.PendingDirection() != DirTop {
		t.Errorf("expected pending top, got %v", g.PendingDirection())
	}
}

func TestDirectionLatestWins(t *testing.T) {
	g, _ := New(10, 10, core.NewRandom(1))

	g.ChangeDirection(DirTop)
	g.ChangeDirection(DirBottom) // reverse of top, but current heading is still left
	mustTick(t, g)

	if g.Direction() != DirBottom {
		t.Errorf("expected heading bottom, got %v", g.Direction())
	}
	if g.Snake()[0] != P(8, 6) {
		t.Errorf("expected head at (8,6), got %v", g.Snake()[0])
	}
}

func TestDirectionInvalidValueIgnored(t *testing.T) {
	g, _ := New(10, 10, core.NewRandom(1))
	g.ChangeDirection(Direction(42))
	if g.PendingDirection() != DirLeft {
		t.Errorf("invalid direction should be ignored, pending is %v", g.PendingDirection())
	}
}

func TestGrowthOnFood(t *testing.T) {
	rng := core.NewRandom(222)
	g := newTestGame(t, 8, 8, []Position{P(4, 4), P(5, 4), P(6, 4)}, DirLeft, P(3, 4), rng)

	mustTick(t, g)

	if g.Len() != 4 {
		t.Fatalf("snake should grow to 4, got %d", g.Len())
	}
	want := []Position{P(3, 4), P(4, 4), P(5, 4), P(6, 4)}
	for i, p := range g.Snake() {
		if p != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], p)
		}
	}
	if g.isSnakeAt(g.Food()) {
		t.Errorf("new food %v placed on snake", g.Food())
	}
	if !g.IsValid(g.Food()) {
		t.Errorf("new food %v out of bounds", g.Food())
	}
}

func TestFoodPlacementRowMajor(t *testing.T) {
	// 3x2 board, snake eats at (1,0); free cells in row-major order are
	// (0,0) (0,1) (1,1) (2,1) once the body and new head are excluded.
	seq := core.NewSequence(2)
	g := newTestGame(t, 3, 2, []Position{P(2, 0)}, DirLeft, P(1, 0), seq)

	mustTick(t, g)

	if g.Food() != P(1, 1) {
		t.Errorf("expected food at (1,1), got %v", g.Food())
	}
	if seq.Calls() != 1 {
		t.Errorf("expected one draw, got %d", seq.Calls())
	}
}

func TestSteadyStateLength(t *testing.T) {
	g := newTestGame(t, 10, 10, []Position{P(5, 5), P(6, 5), P(7, 5)}, DirLeft, P(0, 0), nil)

	for i := 0; i < 3; i++ {
		before := g.Len()
		mustTick(t, g)
		if g.Len() != before {
			t.Fatalf("tick %d: length changed from %d to %d", i, before, g.Len())
		}
	}
	want := []Position{P(2, 5), P(3, 5), P(4, 5)}
	for i, p := range g.Snake() {
		if p != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], p)
		}
	}
}

func TestBoardFull(t *testing.T) {
	// 3x1 board with a 2-segment snake: the food sits on the last free cell,
	// so eating it leaves nowhere to put the next one.
	seq := core.NewSequence()
	g := newTestGame(t, 3, 1, []Position{P(1, 0), P(2, 0)}, DirLeft, P(0, 0), seq)

	mustTick(t, g)

	if !g.GameOver() {
		t.Fatal("game should be over when the board is full")
	}
	if g.Outcome() != OutcomeBoardFull {
		t.Errorf("expected board_full outcome, got %v", g.Outcome())
	}
	if seq.Calls() != 0 {
		t.Errorf("no random draw expected on a full board, got %d", seq.Calls())
	}

	// The game stops before the head is inserted.
	want := []Position{P(1, 0), P(2, 0)}
	got := g.Snake()
	if len(got) != len(want) {
		t.Fatalf("expected body %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if g.Food() != P(0, 0) {
		t.Errorf("food should stay at (0,0), got %v", g.Food())
	}
	if g.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", g.Ticks())
	}
}

func TestNoOpAfterGameOver(t *testing.T) {
	g := newTestGame(t, 3, 3, []Position{P(0, 1)}, DirLeft, P(2, 2), nil)
	mustTick(t, g)
	if !g.GameOver() {
		t.Fatal("expected game over")
	}

	snap := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.ChangeDirection(Directions[i%len(Directions)])
		mustTick(t, g)
	}
	after := g.Snapshot()

	if after.Tick != snap.Tick || after.Food != snap.Food || after.Dir != snap.Dir {
		t.Errorf("state changed after game over: %+v vs %+v", after, snap)
	}
	if len(after.Snake) != len(snap.Snake) || after.Snake[0] != snap.Snake[0] {
		t.Errorf("snake changed after game over: %v vs %v", after.Snake, snap.Snake)
	}
	if g.PendingDirection() != DirLeft {
		t.Errorf("pending direction changed after game over: %v", g.PendingDirection())
	}
}

func TestEmptySnakeIsStopped(t *testing.T) {
	g := newTestGame(t, 5, 5, nil, DirLeft, P(0, 0), nil)
	mustTick(t, g)
	if g.Ticks() != 0 {
		t.Errorf("empty snake should not tick, got %d ticks", g.Ticks())
	}
	if _, ok := g.Head(); ok {
		t.Error("Head should report no segment")
	}
}

type failingSource struct{}

func (failingSource) RandomRange(low, high int) (int, error) {
	return 0, core.ErrEmptyRange
}

type outOfRangeSource struct{}

func (outOfRangeSource) RandomRange(low, high int) (int, error) {
	return high, nil
}

func TestRandomSourceFailureLeavesBody(t *testing.T) {
	for name, rng := range map[string]core.RandomSource{
		"error":        failingSource{},
		"out_of_range": outOfRangeSource{},
	} {
		t.Run(name, func(t *testing.T) {
			g := newTestGame(t, 5, 5, []Position{P(2, 2)}, DirLeft, P(1, 2), rng)
			if err := g.Tick(); err == nil {
				t.Fatal("expected error from random source")
			}
			if g.Len() != 1 || g.Snake()[0] != P(2, 2) || g.Food() != P(1, 2) {
				t.Errorf("state changed on failure: snake=%v food=%v", g.Snake(), g.Food())
			}
			if g.GameOver() {
				t.Error("random failure should not end the game")
			}
			if g.Ticks() != 0 {
				t.Errorf("failed tick should not be counted, got %d ticks", g.Ticks())
			}
			if g.Direction() != DirLeft || g.PendingDirection() != DirLeft {
				t.Errorf("heading changed on failure: %v/%v", g.Direction(), g.PendingDirection())
			}

			// A working source lets the same move go through afterwards.
			g.rng = core.NewSequence(0)
			mustTick(t, g)
			if g.Len() != 2 || g.Ticks() != 1 {
				t.Errorf("retry should grow the snake, got length %d ticks %d", g.Len(), g.Ticks())
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	run := func() Snapshot {
		g, err := New(12, 8, core.NewRandom(12345))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		turns := map[int]Direction{3: DirTop, 5: DirLeft, 8: DirBottom, 12: DirLeft, 20: DirTop}
		for i := 0; i < 40 && !g.GameOver(); i++ {
			if d, ok := turns[i]; ok {
				g.ChangeDirection(d)
			}
			mustTick(t, g)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Tick != s2.Tick || s1.Food != s2.Food || s1.Dir != s2.Dir || s1.Outcome != s2.Outcome {
		t.Errorf("snapshot mismatch: %+v vs %+v", s1, s2)
	}
	if len(s1.Snake) != len(s2.Snake) {
		t.Fatalf("length mismatch: %d vs %d", len(s1.Snake), len(s2.Snake))
	}
	for i := range s1.Snake {
		if s1.Snake[i] != s2.Snake[i] {
			t.Errorf("segment %d mismatch: %v vs %v", i, s1.Snake[i], s2.Snake[i])
		}
	}
}

func TestSnakeReturnsCopy(t *testing.T) {
	g, _ := New(10, 10, core.NewRandom(1))
	body := g.Snake()
	body[0] = P(0, 0)
	if g.Snake()[0] != P(8, 5) {
		t.Error("mutating Snake() result should not affect the game")
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		OutcomeNone:      "none",
		OutcomeWall:      "wall",
		OutcomeSelf:      "self",
		OutcomeBoardFull: "board_full",
		Outcome(99):      "unknown",
	}
	for o, want := range cases {
		if o.String() != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), o.String(), want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, 6, 4, []Position{P(3, 1), P(4, 1)}, DirLeft, P(0, 0), nil)
	s := g.Snapshot()

	if s.Width != 6 || s.Height != 4 {
		t.Errorf("expected 6x4, got %dx%d", s.Width, s.Height)
	}
	if s.Head() != P(3, 1) {
		t.Errorf("expected head (3,1), got %v", s.Head())
	}
	if s.GameOver() || s.State != StatePlaying {
		t.Errorf("expected playing state, got %s", s.State)
	}
	if !s.Occupied(P(4, 1)) || s.Occupied(P(2, 1)) {
		t.Error("Occupied mismatch")
	}
	if !s.IsValid(P(5, 3)) || s.IsValid(P(6, 0)) {
		t.Error("IsValid mismatch")
	}

	s.Snake[0] = P(0, 3)
	if g.Snake()[0] != P(3, 1) {
		t.Error("mutating a snapshot should not affect the game")
	}

	g.ChangeDirection(DirTop)
	mustTick(t, g)
	mustTick(t, g)
	s = g.Snapshot()
	if !s.GameOver() || s.Outcome != OutcomeWall || s.State != StateGameOver {
		t.Errorf("expected game over snapshot, got %+v", s)
	}
}
