// Package config provides YAML-based configuration loading and board
// presets for the snake engine driver.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-engine/internal/core"
)

// ErrInvalidConfig is returned by Validate for configurations the engine cannot run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for a headless snake run.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Run   RunConfig   `yaml:"run"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RunConfig defines how the driver advances the engine.
type RunConfig struct {
	FPS      int    `yaml:"fps"`       // Ticks per second, 0 = as fast as possible
	Seed     int64  `yaml:"seed"`      // 0 = time-based
	MaxTicks int    `yaml:"max_ticks"` // 0 = until game over
	Pilot    string `yaml:"pilot"`
}

// BoardPreset represents a named board size.
type BoardPreset string

const (
	BoardSmall  BoardPreset = "small"
	BoardNormal BoardPreset = "normal"
	BoardLarge  BoardPreset = "large"
)

// BoardForPreset returns the board dimensions for a preset.
func BoardForPreset(preset BoardPreset) (BoardConfig, error) {
	switch preset {
	case BoardSmall:
		return BoardConfig{Width: 10, Height: 8}, nil
	case BoardNormal:
		return BoardConfig{Width: 20, Height: 12}, nil
	case BoardLarge:
		return BoardConfig{Width: 40, Height: 20}, nil
	default:
		return BoardConfig{}, fmt.Errorf("%w: unknown board preset %q", ErrInvalidConfig, preset)
	}
}

// ApplyBoardPreset replaces the board dimensions with the preset's.
func ApplyBoardPreset(cfg *SnakeConfig, preset BoardPreset) error {
	board, err := BoardForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Board = board
	return nil
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Board.Width == 1 && c.Board.Height == 1 {
		return fmt.Errorf("%w: 1x1 board has no room for food", ErrInvalidConfig)
	}
	if c.Run.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative, got %d", ErrInvalidConfig, c.Run.FPS)
	}
	if c.Run.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks must not be negative, got %d", ErrInvalidConfig, c.Run.MaxTicks)
	}
	if c.Run.Pilot == "" {
		return fmt.Errorf("%w: pilot must be set", ErrInvalidConfig)
	}
	return nil
}

// Runtime converts the configuration into the engine's runtime config.
func (c SnakeConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:    c.Board.Width,
		Height:   c.Board.Height,
		TickRate: c.Run.FPS,
		Seed:     c.Run.Seed,
	}
}
