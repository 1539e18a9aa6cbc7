package loaders

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by Static for keys it has no value for.
var ErrNotFound = errors.New("key not found")

// Static is an in-memory map loader, useful for tests and demos.
type Static[K comparable, V any] struct {
	mu     sync.RWMutex
	values map[K]V
}

// NewStatic creates a Static loader seeded with the given values.
// The map may be nil.
func NewStatic[K comparable, V any](values map[K]V) *Static[K, V] {
	s := &Static[K, V]{values: make(map[K]V, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Set adds or replaces a value.
func (s *Static[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Load implements tiercache.Loader.
func (s *Static[K, V]) Load(_ context.Context, key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[key]; ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("static load %v: %w", key, ErrNotFound)
}
