// Package registry connects games to the hosts that run them. A game
// registers itself from init(); hosts look its title up by ID.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/paperplane/internal/core"
)

// Game is what a host drives once per tick. Implementations hold pure
// simulation state; input mapping, timing and drawing belong to the host.
type Game interface {
	// ID is the stable key used on the command line and in score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run sized to the runtime screen and seeded
	// from the runtime seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick and reports state and events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the latest state without advancing.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Registry maps game IDs to their info. The zero value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]GameInfo
}

// Register records g. It panics on a duplicate ID, since that can only
// come from two init() functions claiming the same game.
func (r *Registry) Register(g Game) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := g.ID()
	if _, dup := r.entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	if r.entries == nil {
		r.entries = make(map[string]GameInfo)
	}
	r.entries[id] = GameInfo{ID: id, Title: g.Title()}
}

// Lookup returns the info for id.
func (r *Registry) Lookup(id string) (GameInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.entries[id]
	return info, ok
}

// Default is the process-wide registry games add themselves to.
var Default = &Registry{}

// Register adds g to the default registry.
func Register(g Game) { Default.Register(g) }

// Lookup finds id in the default registry.
func Lookup(id string) (GameInfo, bool) { return Default.Lookup(id) }
