package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-engine/internal/config"
	"github.com/vovakirdan/snake-engine/internal/games/snake"
	"github.com/vovakirdan/snake-engine/internal/platform/headless"
)

var (
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Width(10)

	outcomeGoodStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	outcomeBadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// outcomeText describes how the run ended.
func outcomeText(res headless.Result) string {
	if !res.Finished() {
		return outcomeGoodStyle.Render("stopped (still alive)")
	}
	switch res.Outcome {
	case snake.OutcomeBoardFull:
		return outcomeGoodStyle.Render("board full")
	case snake.OutcomeWall:
		return outcomeBadStyle.Render("hit the wall")
	case snake.OutcomeSelf:
		return outcomeBadStyle.Render("ran into itself")
	default:
		return outcomeBadStyle.Render(res.Outcome.String())
	}
}

// renderSummary formats a finished run for the terminal.
func renderSummary(cfg config.SnakeConfig, res headless.Result) string {
	rows := [][2]string{
		{"Board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height)},
		{"Pilot", cfg.Run.Pilot},
		{"Outcome", outcomeText(res)},
		{"Ticks", fmt.Sprintf("%d", res.Ticks)},
		{"Food", fmt.Sprintf("%d", res.FoodEaten)},
		{"Length", fmt.Sprintf("%d", res.Length)},
	}
	if len(res.Final.Snake) > 0 {
		rows = append(rows, [2]string{"Head", res.Final.Head().String()})
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, summaryTitleStyle.Render("Snake run"))
	for _, r := range rows {
		lines = append(lines, summaryLabelStyle.Render(r[0])+r[1])
	}
	return summaryBoxStyle.Render(strings.Join(lines, "\n"))
}
