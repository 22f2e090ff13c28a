package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-engine/internal/config"
	"github.com/vovakirdan/snake-engine/internal/core"
	"github.com/vovakirdan/snake-engine/internal/games/snake"
	"github.com/vovakirdan/snake-engine/internal/platform/headless"
	"github.com/vovakirdan/snake-engine/internal/registry"
)

// pilotSeedSalt keeps the pilot's random stream apart from the food stream.
const pilotSeedSalt = 0x5eed

var (
	flagWidth    int
	flagHeight   int
	flagBoard    string
	flagFPS      int
	flagSeed     int64
	flagMaxTicks int
	flagPilot    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play one game with a pilot",
	Long: `Play one headless game and print a summary when it ends.

The configuration file is loaded first; flags given on the command line
override it.

Board presets:
  small  - 10x8
  normal - 20x12
  large  - 40x20

Examples:
  snake run
  snake run --pilot straight
  snake run --width 6 --height 4 --fps 0 --seed 7
  snake run --board large --max-ticks 1000`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells")
	runCmd.Flags().StringVar(&flagBoard, "board", "", "Board preset: small, normal, large")
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "Ticks per second (0 = as fast as possible)")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	runCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = until game over)")
	runCmd.Flags().StringVar(&flagPilot, "pilot", "", "Pilot name (see 'snake list')")
}

func runRun(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr, flagLogLevel, flagLogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyRunFlags(cmd, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := simulate(ctx, cfg, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(renderSummary(cfg, res))
}

// applyRunFlags overrides cfg with the flags that were set explicitly.
func applyRunFlags(cmd *cobra.Command, cfg *config.SnakeConfig) error {
	flags := cmd.Flags()

	if flags.Changed("board") {
		if err := config.ApplyBoardPreset(cfg, config.BoardPreset(flagBoard)); err != nil {
			return err
		}
	}
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("fps") {
		cfg.Run.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Run.Seed = flagSeed
	}
	if flags.Changed("max-ticks") {
		cfg.Run.MaxTicks = flagMaxTicks
	}
	if flags.Changed("pilot") {
		cfg.Run.Pilot = flagPilot
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	return checkPilot(cfg.Run.Pilot)
}

// checkPilot rejects pilot names that were never registered.
func checkPilot(name string) error {
	if !registry.Exists(name) {
		return fmt.Errorf("%w %q; run 'snake list' to see available pilots", registry.ErrUnknownPilot, name)
	}
	return nil
}

// simulate builds the engine and pilot from cfg and plays one game.
// A zero seed is replaced with a time-based one before anything is built.
func simulate(ctx context.Context, cfg config.SnakeConfig, logger *log.Logger) (headless.Result, error) {
	if err := cfg.Validate(); err != nil {
		return headless.Result{}, err
	}
	if err := checkPilot(cfg.Run.Pilot); err != nil {
		return headless.Result{}, err
	}

	rt := cfg.Runtime()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game, err := snake.NewFromConfig(rt)
	if err != nil {
		return headless.Result{}, err
	}
	p, err := registry.Create(cfg.Run.Pilot, core.NewRandom(rt.Seed^pilotSeedSalt))
	if err != nil {
		return headless.Result{}, err
	}

	logger.Info("board ready",
		"width", rt.Width,
		"height", rt.Height,
		"seed", rt.Seed,
		"food", game.Food().String(),
	)

	driver := headless.New(game, p, rt.TickRate, logger)
	driver.MaxTicks = cfg.Run.MaxTicks
	return driver.Run(ctx)
}
