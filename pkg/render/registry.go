package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrRendererNotFound is wrapped by lookups for an unregistered name.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry maps renderer names to renderers. Names are matched
// case-insensitively.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Renderer)}
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds renderer under its Name. Blank and duplicate names fail.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	key := registryKey(renderer.Name())
	if key == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byKey[key]; taken {
		return fmt.Errorf("render: renderer %q already registered", renderer.Name())
	}
	r.byKey[key] = renderer
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// Get returns the renderer registered as name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byKey[registryKey(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// Resolve picks the renderer for a request. An explicit name must exist.
// With no name, fallback is tried and then the first name in List order.
func (r *Registry) Resolve(name, fallback string) (Renderer, error) {
	if strings.TrimSpace(name) != "" {
		return r.Get(name)
	}
	if renderer, err := r.Get(fallback); err == nil {
		return renderer, nil
	}
	names := r.List()
	if len(names) == 0 {
		return nil, errors.New("render: no renderers registered")
	}
	return r.Get(names[0])
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byKey))
	for key := range r.byKey {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}
