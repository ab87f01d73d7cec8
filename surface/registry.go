// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"sort"
	"sync"

	"github.com/gogpu/gpucontext"
)

// Factory creates a Surface for a device provider. The size is the size of
// the first frame the caller intends to acquire.
type Factory func(provider gpucontext.DeviceProvider, size image.Point) (Surface, error)

// SoftwareFactory creates an ImageSurface. The provider is ignored.
func SoftwareFactory(gpucontext.DeviceProvider, image.Point) (Surface, error) {
	return NewImageSurface(), nil
}

// CanvasFactory creates a CanvasSurface. It fails for a nil provider.
func CanvasFactory(provider gpucontext.DeviceProvider, size image.Point) (Surface, error) {
	return NewCanvasSurface(provider, size)
}

// RegistryEntry represents a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory
}

// Registry manages named surface backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]RegistryEntry
}

var globalRegistry = &Registry{}

// Register adds a backend to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Lookup returns the factory registered under name in the global registry.
func Lookup(name string) (Factory, error) {
	return globalRegistry.Lookup(name)
}

// List returns all registered backend names sorted by priority.
func List() []string {
	return globalRegistry.List()
}

// NewSurface creates a surface with the highest-priority backend that
// succeeds for provider.
func NewSurface(provider gpucontext.DeviceProvider, size image.Point) (Surface, error) {
	return globalRegistry.NewSurface(provider, size)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]RegistryEntry)
	}
	r.entries[name] = RegistryEntry{Name: name, Priority: priority, Factory: factory}
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	return e.Factory, nil
}

// List returns all registered backend names sorted by priority (highest
// first, then by name).
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// NewSurface tries each backend in priority order.
func (r *Registry) NewSurface(provider gpucontext.DeviceProvider, size image.Point) (Surface, error) {
	var errs []error
	for _, name := range r.List() {
		f, err := r.Lookup(name)
		if err != nil {
			continue
		}
		s, err := f(provider, size)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrNoBackendAvailable
	}
	return nil, errors.Join(errs...)
}

// ErrNoBackendAvailable is returned when no surface backends are registered.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

func init() {
	Register("software", 10, SoftwareFactory)
	Register("canvas", 100, CanvasFactory)
}
