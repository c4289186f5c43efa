// Package registry keeps the studio variants the platform can open.
// Variant packages register a factory from init, so the commands and the
// SSH server only need a blank import to offer them.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tile-studio/internal/core"
)

// ErrUnknown is returned by Create for an ID nobody registered.
var ErrUnknown = errors.New("unknown variant")

// Game is a variant as the platform drives it: fixed ticks in, a screen
// buffer and a state summary out. Implementations must not depend on the
// terminal or Bubble Tea.
type Game interface {
	// ID is the stable name used on the command line and in storage.
	ID() string
	Title() string

	// Reset starts over with a blank level sized for cfg.
	Reset(cfg core.RuntimeConfig)

	// Step runs one tick with the actions and pointer events gathered since
	// the last one. Side effects come back as StepResult.Events.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the platform clears first.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is an optional Game extension. Games without it are Reset on
// every terminal resize.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant under id. Registering the same id twice is a
// programming error and panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: variant %q registered twice", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns the registered variants ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a new instance of the variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknown, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
