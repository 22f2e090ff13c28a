package headless

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-engine/internal/games/snake"
)

// model is the Bubble Tea model that plays one run. It has no view; the
// program hosting it runs without a renderer or input.
type model struct {
	ctx    context.Context
	driver *Driver
	logger *log.Logger

	res Result
	err error
}

func newModel(ctx context.Context, d *Driver, logger *log.Logger) *model {
	return &model{
		ctx:    ctx,
		driver: d,
		logger: logger,
		res:    Result{Length: d.Game.Len()},
	}
}

// Init starts the tick loop.
func (m *model) Init() tea.Cmd {
	return tickCmd(m.driver.Interval)
}

// Update handles tick messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// View renders nothing.
func (m *model) View() string { return "" }

// handleTick steers, ticks and decides whether to schedule another tick.
func (m *model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil || m.driver.Game.GameOver() {
		return m, tea.Quit
	}

	if err := m.step(); err != nil {
		m.err = err
		return m, tea.Quit
	}

	if m.driver.Game.GameOver() {
		return m, tea.Quit
	}
	if limit := m.driver.MaxTicks; limit > 0 && m.res.Ticks >= limit {
		m.logger.Info("tick limit reached", "ticks", m.res.Ticks)
		return m, tea.Quit
	}
	return m, tickCmd(m.driver.Interval)
}

// step runs one pilot decision and one engine tick, recording growth.
func (m *model) step() error {
	g := m.driver.Game
	g.ChangeDirection(m.driver.Pilot.Next(g.Snapshot()))

	before := g.Len()
	if err := g.Tick(); err != nil {
		return fmt.Errorf("headless: tick %d: %w", m.res.Ticks+1, err)
	}
	m.res.Ticks++

	after := g.Len()
	switch {
	case after > before:
		m.res.FoodEaten += after - before
		snap := g.Snapshot()
		m.logger.Debug("food eaten", "tick", m.res.Ticks, "length", after, "next_food", snap.Food.String())
	case g.GameOver() && g.Snapshot().Outcome == snake.OutcomeBoardFull:
		// The last food ends the game without growing the snake.
		m.res.FoodEaten++
		m.logger.Debug("food eaten", "tick", m.res.Ticks, "length", after)
	}
	return nil
}
