package recording

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// Registry maps backend names to factories. Each engine owns its own
// Registry; backend packages expose a Register(*Registry) helper instead
// of registering themselves from init.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

// NewRegistry creates a registry with the "recorder" backend registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]BackendFactory)}
	r.Register("recorder", func() Backend { return NewRecorder() })
	return r
}

// Register adds a backend factory under name.
//
// Register panics if factory is nil or name is already registered, so
// wiring mistakes surface at startup rather than as a silently replaced backend.
func (r *Registry) Register(name string, factory BackendFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := r.factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	r.factories[name] = factory
}

// Unregister removes a backend. Unknown names are a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// New creates a backend by name.
func (r *Registry) New(name string) (Backend, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (not registered with this registry)", name)
	}
	return factory(), nil
}

// Names returns the registered backend names, sorted.
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

// IsRegistered reports whether name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}
