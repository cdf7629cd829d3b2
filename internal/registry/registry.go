// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	sand "github.com/vovakirdan/tui-sand/internal/sand/core"
)

// Scene builds the starting contents of a sandbox world.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "hourglass").
	// Used for CLI arguments and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary shown by `sand list`.
	Description() string

	// Populate writes the scene into a freshly allocated, all-Air grid.
	// It must work for any grid size, clipping what does not fit.
	Populate(g *sand.Grid) error
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

// ErrUnknownScene is returned by Create for unregistered IDs.
var ErrUnknownScene = errors.New("registry: unknown scene")

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SceneInfo)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	s := f()
	infos[id] = SceneInfo{ID: id, Title: s.Title(), Description: s.Description()}
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Build creates the scene with the given ID and populates a new grid of size n.
func Build(id string, n int) (*sand.Grid, error) {
	s, err := Create(id)
	if err != nil {
		return nil, err
	}
	g := sand.NewGrid(n)
	if err := s.Populate(g); err != nil {
		return nil, fmt.Errorf("registry: scene %q: %w", id, err)
	}
	return g, nil
}
