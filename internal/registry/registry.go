// Package registry provides a global registry for game frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/replay"
)

// Session is everything a frontend needs to host one play session.
type Session struct {
	Config     config.JumperConfig
	ConfigPath string // Watched for edits when non-empty
	Runtime    core.RuntimeConfig
	Logger     *log.Logger
}

// Frontend owns the frame loop: it polls input, steps the game once per
// tick and draws it.
type Frontend interface {
	// Name returns the identifier used with --frontend (e.g., "tui").
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run blocks until the player quits or ctx is cancelled and returns
	// the recorded run.
	Run(ctx context.Context, s Session) (replay.Run, error)
}

// Info contains metadata about a registered frontend.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new frontend instance.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns all registered frontends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by name.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
