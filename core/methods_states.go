// File: methods_states.go
// Role: State lifecycle & queries: AddState/HasState/States/StateCount and
//       metadata accessors.
// Determinism:
//   - States() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under muState write lock; queries under read lock.

package core

import (
	"fmt"
	"sort"
)

// AddState inserts a new state with the given ID.
// Returns ErrEmptyStateID if id is empty.
// If the state already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddState(id string) error {
	if id == "" {
		return ErrEmptyStateID
	}
	g.muState.Lock()
	defer g.muState.Unlock()

	if _, exists := g.states[id]; exists {
		return nil
	}
	g.states[id] = &State{ID: id, Metadata: make(map[string]interface{})}

	return nil
}

// HasState reports whether a state with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasState(id string) bool {
	if id == "" {
		return false
	}
	g.muState.RLock()
	defer g.muState.RUnlock()
	_, exists := g.states[id]

	return exists
}

// States returns all state IDs sorted ascending.
// Complexity: O(S log S).
func (g *Graph) States() []string {
	g.muState.RLock()
	ids := make([]string, 0, len(g.states))
	for id := range g.states {
		ids = append(ids, id)
	}
	g.muState.RUnlock()
	sort.Strings(ids)

	return ids
}

// StateCount returns the number of states.
func (g *Graph) StateCount() int {
	g.muState.RLock()
	defer g.muState.RUnlock()

	return len(g.states)
}

// SetMetadata stores key=value on state id.
// Returns ErrEmptyStateID or ErrStateNotFound.
func (g *Graph) SetMetadata(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyStateID
	}
	g.muState.Lock()
	defer g.muState.Unlock()
	s, ok := g.states[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStateNotFound, id)
	}
	s.Metadata[key] = value

	return nil
}

// Metadata returns the value stored under key for state id.
// The boolean is false when either the state or the key is missing.
func (g *Graph) Metadata(id, key string) (interface{}, bool) {
	g.muState.RLock()
	defer g.muState.RUnlock()
	s, ok := g.states[id]
	if !ok {
		return nil, false
	}
	v, ok := s.Metadata[key]

	return v, ok
}
