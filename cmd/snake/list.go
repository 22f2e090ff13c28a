package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-engine/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available pilots",
	Long:  `Shows a list of all pilots that can steer the snake.`,
	Run:   runList,
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	listNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1)
	listCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	pilots := registry.List()

	if len(pilots) == 0 {
		fmt.Fprintln(out, "No pilots available.")
		return
	}

	fmt.Fprintln(out, renderPilotTable(pilots))
	fmt.Fprintln(out, "Run 'snake run --pilot <name>' to use a pilot.")
}

// renderPilotTable lays out registered pilots as a bordered table.
func renderPilotTable(pilots []registry.PilotInfo) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers("Name", "Description").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return listHeaderStyle
			case col == 0:
				return listNameStyle
			default:
				return listCellStyle
			}
		})

	for _, p := range pilots {
		t.Row(p.Name, p.Description)
	}
	return t.String()
}
