package transform

import (
	"sort"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// Factory provides access to the registered transform backends by name.
// It decouples backend construction from the code that selects and runs them,
// so the orchestration layer and tests can swap implementations.
type Factory interface {
	// Get returns the backend registered under name.
	Get(name string) (Transformer, error)
	// GetAll returns every registered backend keyed by name.
	GetAll() map[string]Transformer
	// List returns the registered backend names in sorted order.
	List() []string
}

// defaultFactory is the standard Factory backed by a name map.
type defaultFactory struct {
	backends map[string]Transformer
}

// NewDefaultFactory creates a factory containing the three standard backends:
// recursive, iterative, and accelerator.
func NewDefaultFactory() Factory {
	return NewFactory(NewRecursive(), NewIterative(), NewAccelerator())
}

// NewFactory creates a factory containing exactly the given backends.
//
// Parameters:
//   - backends: The backends to register, keyed by their Name().
//
// Returns:
//   - Factory: The populated factory.
func NewFactory(backends ...Transformer) Factory {
	m := make(map[string]Transformer, len(backends))
	for _, b := range backends {
		m[b.Name()] = b
	}
	return &defaultFactory{backends: m}
}

// Get returns the backend registered under name.
func (f *defaultFactory) Get(name string) (Transformer, error) {
	b, ok := f.backends[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown transform backend %q (available: %v)", name, f.List())
	}
	return b, nil
}

// GetAll returns a copy of the backend map.
func (f *defaultFactory) GetAll() map[string]Transformer {
	m := make(map[string]Transformer, len(f.backends))
	for k, v := range f.backends {
		m[k] = v
	}
	return m
}

// List returns the sorted backend names.
func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.backends))
	for k := range f.backends {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
