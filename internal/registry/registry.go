// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI and the
// menu to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mindbender/internal/core"
)

// Game is the interface the terminal platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles key mapping and display.
type Game interface {
	// ID returns the variant identifier (e.g., "mindbender_3p").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new match. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of semantic input (cursor moves, place,
	// resign, restart) and returns the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current match into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Info describes a registered variant.
type Info struct {
	ID      string
	Title   string
	Players int    // Default player count of the variant
	Summary string // One-line description for listings
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from a game's init() function.
// Panics if a variant with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: variant without id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = f().Title()
	}

	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered variants ordered by player count, then ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Players != result[j].Players {
			return result[i].Players < result[j].Players
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered variant.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return e.factory(), nil
}

// ForPlayers returns the ID of the variant whose default player count is n,
// or the first registered variant when none matches.
func ForPlayers(n int) (string, bool) {
	list := List()
	if len(list) == 0 {
		return "", false
	}
	for _, info := range list {
		if info.Players == n {
			return info.ID, true
		}
	}
	return list[0].ID, true
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
