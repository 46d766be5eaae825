// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing frontends
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-sim/internal/scene"
)

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
	// Scored scenes record a high score when they exit.
	Scored bool
}

// Factory creates a fresh scene instance.
type Factory func() scene.Scene

type entry struct {
	factory Factory
	info    SceneInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	register(id, f, false)
}

// RegisterScored adds a scene whose score is kept in the high-score table.
func RegisterScored(id string, f Factory) {
	register(id, f, true)
}

func register(id string, f Factory, scored bool) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	// Title comes from a throwaway instance
	s := f()
	entries[id] = entry{
		factory: f,
		info:    SceneInfo{ID: id, Title: s.Title(), Scored: scored},
	}
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scene by its ID.
func Create(id string) (scene.Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w: %q", scene.ErrUnknownScene, id)
	}

	return e.factory(), nil
}

// CreateAll instantiates one fresh copy of every registered scene, sorted by ID.
// Each App gets its own set so sessions never share scene state.
func CreateAll() []scene.Scene {
	infos := List()

	mu.RLock()
	defer mu.RUnlock()

	scenes := make([]scene.Scene, 0, len(infos))
	for _, info := range infos {
		scenes = append(scenes, entries[info.ID].factory())
	}
	return scenes
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// NewApp builds an App over fresh instances of every registered scene.
func NewApp(ctx *scene.Context) *scene.App {
	return scene.NewApp(ctx, CreateAll()...)
}
