// Package registry provides named registries for pluggable factories.
// Level building registers its entity kinds, door conditions, and event
// effects in init() functions, so the loader can look them up by the
// names used in level files without hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Info describes a registered entry.
type Info struct {
	Name  string
	Title string
}

// Registry maps names to values of one kind. It is safe for concurrent use.
type Registry[T any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]T
	titles  map[string]string
}

// New creates an empty registry. Kind names the registered things in
// error messages (e.g. "entity kind").
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]T),
		titles:  make(map[string]string),
	}
}

// Register adds a value under name.
// Typically called from an init() function.
// Panics if the name is already registered.
func (r *Registry[T]) Register(name string, v T) {
	r.RegisterTitled(name, name, v)
}

// RegisterTitled adds a value with a human-readable title for listings.
func (r *Registry[T]) RegisterTitled(name, title string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, name))
	}
	r.entries[name] = v
	r.titles[name] = title
}

// Get looks up a value by name.
// Returns an error if the name is not registered.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, name)
	}
	return v, nil
}

// Exists checks if a name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// List returns all registered entries, sorted by name.
func (r *Registry[T]) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.entries))
	for name := range r.entries {
		result = append(result, Info{Name: name, Title: r.titles[name]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	infos := r.List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
