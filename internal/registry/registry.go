// Package registry provides a global registry of front-ends.
// Front-ends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// Frontend hosts one game session on some output device.
type Frontend interface {
	// ID returns a unique identifier (e.g., "terminal", "window").
	// Used for the --frontend flag.
	ID() string

	// Title returns a human-readable description for listings.
	Title() string

	// Run plays a session and blocks until the user quits or ctx is done.
	Run(ctx context.Context, opts Options) error
}

// Options carries everything a front-end needs to start a session.
type Options struct {
	Game     config.PongConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Sound    bool
	Duration time.Duration // Session length limit, 0 = until the user quits
}

// FrontendInfo contains metadata about a registered front-end.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a front-end.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Typically called from a front-end's init() function.
// Panics if a front-end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered front-ends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new front-end by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a front-end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
