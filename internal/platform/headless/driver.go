// Package headless drives the snake engine on a fixed cadence without a
// terminal UI. It plays the clock and input roles around the engine.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-engine/internal/games/snake"
	"github.com/vovakirdan/snake-engine/internal/registry"
)

// Engine is the part of the snake game the driver needs.
type Engine interface {
	ChangeDirection(d snake.Direction)
	Tick() error
	GameOver() bool
	Len() int
	Snapshot() snake.Snapshot
}

// Result summarises a finished run.
type Result struct {
	Ticks     int
	FoodEaten int
	Length    int
	Outcome   snake.Outcome
	Final     snake.Snapshot
}

// Finished reports whether the game ended, as opposed to the run stopping at
// its tick limit.
func (r Result) Finished() bool {
	return r.Final.GameOver()
}

// Driver advances an engine once per interval, steering with a pilot.
type Driver struct {
	Game     Engine
	Pilot    registry.Pilot
	Interval time.Duration // 0 runs as fast as possible
	MaxTicks int           // 0 means until game over
	Logger   *log.Logger   // nil disables logging
}

// New creates a driver ticking at tickRate ticks per second.
func New(game Engine, pilot registry.Pilot, tickRate int, logger *log.Logger) *Driver {
	return &Driver{
		Game:     game,
		Pilot:    pilot,
		Interval: IntervalFor(tickRate),
		Logger:   logger,
	}
}

// IntervalFor converts a tick rate into a tick interval. Non-positive rates
// mean free-running.
func IntervalFor(tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(tickRate)
}

// Run plays until the game ends, MaxTicks is reached or ctx is done.
// The loop is hosted by a Bubble Tea program with no renderer and no input.
// On cancellation it returns the partial result together with ctx.Err().
func (d *Driver) Run(ctx context.Context) (Result, error) {
	if d.Game == nil || d.Pilot == nil {
		return Result{}, errors.New("headless: driver needs a game and a pilot")
	}
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := newModel(ctx, d, logger)
	if err := ctx.Err(); err != nil {
		return d.finish(m.res, logger), err
	}

	logger.Info("run started",
		"pilot", d.Pilot.Name(),
		"interval", d.Interval,
		"max_ticks", d.MaxTicks,
	)

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	_, runErr := p.Run()

	res := d.finish(m.res, logger)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if m.err != nil {
		return res, m.err
	}
	if runErr != nil {
		return res, fmt.Errorf("headless: %w", runErr)
	}
	return res, nil
}

func (d *Driver) finish(res Result, logger *log.Logger) Result {
	res.Final = d.Game.Snapshot()
	res.Length = len(res.Final.Snake)
	res.Outcome = res.Final.Outcome

	if res.Final.GameOver() {
		logger.Info("game over",
			"outcome", res.Outcome.String(),
			"ticks", res.Ticks,
			"length", res.Length,
			"head", res.Final.Head().String(),
		)
	}
	return res
}
