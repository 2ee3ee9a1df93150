package stage

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownStage marks a stage name with no registered factory. Resolution
// failure is a fatal configuration error; nothing catches it locally.
var ErrUnknownStage = errors.New("unknown stage")

// Factory materializes a rewriter from a stage's opaque options.
type Factory func(options any) (Rewriter, error)

// Registry maps stage names to rewriter factories. It is the lookup boundary
// pipeline execution calls out through; how a name maps to behavior is
// invisible to assembly.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a factory to a stage name, replacing any previous binding.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Resolve materializes the rewriter for a named stage.
func (r *Registry) Resolve(name string, options any) (Rewriter, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
	rw, err := f(options)
	if err != nil {
		return nil, fmt.Errorf("stage %q: %w", name, err)
	}
	return rw, nil
}

// Names returns the registered stage names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
