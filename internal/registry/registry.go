// Package registry provides a global registry for pilot factories.
// Pilots register themselves in init() functions, allowing the driver
// and CLI to discover and instantiate them by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-engine/internal/core"
	"github.com/vovakirdan/snake-engine/internal/games/snake"
)

// ErrUnknownPilot is returned by Create for names that were never registered.
var ErrUnknownPilot = errors.New("registry: unknown pilot")

// Pilot chooses a heading for the next tick. It stands in for the input
// collaborator when the engine is played headless.
type Pilot interface {
	// Name returns the identifier the pilot is registered under.
	Name() string

	// Next returns the heading to request before the next tick.
	// The engine silently ignores reversals, so pilots need not filter them.
	Next(s snake.Snapshot) snake.Direction
}

// PilotInfo contains metadata about a registered pilot.
type PilotInfo struct {
	Name        string
	Description string
}

// Factory creates a new pilot. rng is the pilot's own random source.
type Factory func(rng core.RandomSource) Pilot

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a pilot factory to the registry.
// Panics if a pilot with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: pilot %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered pilots, sorted by name.
func List() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PilotInfo, 0, len(factories))
	for name := range factories {
		result = append(result, PilotInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a pilot by name.
func Create(name string, rng core.RandomSource) (Pilot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPilot, name)
	}

	return f(rng), nil
}

// Exists checks if a pilot with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
