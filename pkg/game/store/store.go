// Package store holds the sparse, lazily generated state of every cell.
//
// A cell is materialized the first time it is read: its value is fixed by the
// generator and cached for the lifetime of the store. After that the value
// only changes through Set. A cell emptied by the player is a materialized
// entry holding token.Empty, which is distinct from a cell that was never
// generated.
//
// Store does no locking of its own; callers confine it to one goroutine or
// guard it with their own lock.
package store

import (
	"sort"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/generator"
	"worldofbits/pkg/game/token"
)

// Store maps cells to their current token value
type Store struct {
	gen   generator.Generator
	cells map[world.Cell]token.Value
}

// New creates an empty store backed by gen. A nil gen uses
// generator.DefaultGenerator.
func New(gen generator.Generator) *Store {
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	return &Store{
		gen:   gen,
		cells: make(map[world.Cell]token.Value),
	}
}

// Generator returns the generator backing the store
func (s *Store) Generator() generator.Generator {
	return s.gen
}

// Get returns the current value of c, generating and caching it on first access
func (s *Store) Get(c world.Cell) token.Value {
	if v, ok := s.cells[c]; ok {
		return v
	}
	v := s.gen.Generate(c)
	s.cells[c] = v
	return v
}

// Set overwrites the value of c and marks it materialized
func (s *Store) Set(c world.Cell, v token.Value) {
	s.cells[c] = v
}

// Materialized reports whether c has been generated or set
func (s *Store) Materialized(c world.Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of materialized cells
func (s *Store) Len() int {
	return len(s.cells)
}

// Each calls fn for every materialized cell, ordered by I then J
func (s *Store) Each(fn func(c world.Cell, v token.Value)) {
	keys := make([]world.Cell, 0, len(s.cells))
	for c := range s.cells {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].I != keys[b].I {
			return keys[a].I < keys[b].I
		}
		return keys[a].J < keys[b].J
	})
	for _, c := range keys {
		fn(c, s.cells[c])
	}
}
