// Package factory creates the entities of a level. Mob kinds register a
// spawner by name so levels can place any kind the game knows about.
package factory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownKind = errors.New("unknown mob kind")

// SpawnFunc creates a mob entity with its top-left corner at (x, y).
type SpawnFunc func(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]SpawnFunc)
)

// Register makes a mob kind spawnable. It panics if kind is registered twice.
func Register(kind string, fn SpawnFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if fn == nil {
		panic("factory: nil spawner for " + kind)
	}
	if _, dup := registry[kind]; dup {
		panic("factory: kind registered twice: " + kind)
	}
	registry[kind] = fn
}

// Spawn creates a mob of the named kind.
func Spawn(ecs *ecs.ECS, kind string, x, y float64) (*donburi.Entry, error) {
	registryMu.RLock()
	fn, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("failed to spawn %q: %w", kind, ErrUnknownKind)
	}
	return fn(ecs, x, y)
}

// Kinds lists the registered kinds in order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
