// snake drives the grid snake engine headless, steered by a pilot.
//
// Usage:
//
//	snake run               - Play one game with a pilot and print a summary
//	snake list              - List available pilots
//	snake config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-format <fmt>   - text, logfmt or json (default: text on a terminal, logfmt otherwise)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import pilots to register them
	_ "github.com/vovakirdan/snake-engine/internal/pilot"
)

var (
	// Global flags
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Headless grid snake engine",
	Long: `snake runs the grid snake simulation without a display.

A pilot steers the snake, the engine advances on a fixed cadence and
the outcome is reported when the game ends.

Available commands:
  run      - Play one game and print a summary
  list     - Show all available pilots
  config   - Print the effective configuration

Examples:
  snake run
  snake run --pilot random --seed 42 --fps 0
  snake run --board large --max-ticks 500
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text, logfmt, json")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
