// Package core provides the shared runtime types for the snake engine.
// It has no external dependencies so the game logic stays pure and testable.
package core

// RuntimeConfig contains configuration passed to the engine and driver at startup.
type RuntimeConfig struct {
	Width    int   // Board width in cells
	Height   int   // Board height in cells
	TickRate int   // Simulation ticks per second (0 = free-running)
	Seed     int64 // RNG seed for deterministic gameplay
}
