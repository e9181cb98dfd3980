// Package memory is a process-local persistence backend. Nothing survives a
// restart; it backs tests and throwaway runs.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// Backend stores values in a map.
type Backend struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{values: make(map[string][]byte)}
}

func (b *Backend) LoadAll(_ context.Context) (map[string][]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string][]byte, len(b.values))
	for k, v := range b.values {
		out[k] = slices.Clone(v)
	}
	return out, nil
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.values[key]
	return slices.Clone(v), ok, nil
}

func (b *Backend) SetMany(_ context.Context, values map[string][]byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for k, v := range values {
		b.values[k] = slices.Clone(v)
	}
	b.writes++
	return nil
}

// Keys returns the stored keys in sorted order.
func (b *Backend) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Sorted(maps.Keys(b.values))
}

// Writes returns how many SetMany calls have been made.
func (b *Backend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// Ping always succeeds.
func (b *Backend) Ping(_ context.Context) error { return nil }
