package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-engine/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'snake run' does and prints it as YAML.

With --default the built-in configuration file is printed instead, comments
included, as a starting point for your own.

Examples:
  snake config
  snake config --config ./my-snake.yaml
  snake config --default > configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaultConfig bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaultConfig {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
