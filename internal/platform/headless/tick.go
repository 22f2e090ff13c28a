package headless

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers the next TickMsg after interval.
// A zero interval delivers it immediately.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
