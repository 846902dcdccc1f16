// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/gogpu/pointview"
)

// Factory creates a window with the given options. Options are already
// normalized when a Registry calls it.
type Factory func(opts Options) (pointview.Window, error)

// Entry represents a registered window backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native GPU windows
	//   - 50: terminal
	//   - 0: explicit-only backends, never chosen by Open
	Priority int

	// Factory creates window instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered window backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*Entry, bool) {
	return globalRegistry.Get(name)
}

// Open creates a window using the best available backend.
func Open(opts Options) (pointview.Window, error) {
	return globalRegistry.Open(opts)
}

// OpenByName creates a window using a specific named backend.
// An empty name selects the best available backend.
func OpenByName(name string, opts Options) (pointview.Window, error) {
	if name == "" {
		return globalRegistry.Open(opts)
	}
	return globalRegistry.OpenByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Entry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &Entry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// Open creates a window using the best available backend with a positive
// priority. Backends are tried in priority order; the last failure is
// returned when none opens.
func (r *Registry) Open(opts Options) (pointview.Window, error) {
	r.mu.RLock()
	var candidates []string
	for _, name := range r.sortedNames(true) {
		if r.entries[name].Priority > 0 {
			candidates = append(candidates, name)
		}
	}
	r.mu.RUnlock()

	if len(candidates) == 0 {
		return nil, ErrNoBackend
	}

	var lastErr error
	for _, name := range candidates {
		w, err := r.OpenByName(name, opts)
		if err == nil {
			return w, nil
		}
		pointview.Logger().Debug("window: backend failed, trying next",
			slog.String("backend", name), slog.Any("err", err))
		lastErr = err
	}
	return nil, lastErr
}

// OpenByName creates a window using a specific backend.
func (r *Registry) OpenByName(name string, opts Options) (pointview.Window, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	w, err := entry.Factory(opts.normalize())
	if err != nil {
		return nil, err
	}
	pointview.Logger().Info("window: opened", slog.String("backend", name))
	return w, nil
}

// sortedNames returns backend names sorted by priority (highest first),
// ties by name. If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackend is returned when no window backends are registered
	// or available on the current system.
	ErrNoBackend = errors.New("window: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "window: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "window: backend unavailable: " + e.Name
}

// init registers the built-in in-memory backend.
func init() {
	Register("image", 0, func(opts Options) (pointview.Window, error) {
		return NewImage(opts), nil
	}, nil)
}
