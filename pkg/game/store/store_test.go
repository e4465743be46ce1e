package store

import (
	"testing"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/generator"
	"worldofbits/pkg/game/token"
)

func TestGet_GeneratesOnceAndCaches(t *testing.T) {
	gen := generator.NewCounting(generator.NewHashed(9))
	s := New(gen)

	cells := world.VisibleCells(world.Cell{I: 5, J: 5}, 4)
	for round := 0; round < 3; round++ {
		for _, c := range cells {
			first := s.Get(c)
			if again := s.Get(c); again != first {
				t.Fatalf("Get(%v) = %d then %d", c, first, again)
			}
		}
	}
	for _, c := range cells {
		if got := gen.Calls(c); got != 1 {
			t.Errorf("generator called %d times for %v, want 1", got, c)
		}
	}
	if got, want := s.Len(), len(cells); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestGet_EmptyByMutationIsNotRegenerated(t *testing.T) {
	c := world.Cell{I: 1, J: 1}
	gen := generator.NewCounting(generator.Table{c: 4})
	s := New(gen)

	if got := s.Get(c); got != 4 {
		t.Fatalf("Get(%v) = %d, want 4", c, got)
	}
	s.Set(c, token.Empty)
	if got := s.Get(c); !got.IsEmpty() {
		t.Errorf("Get after pick up = %d, want empty", got)
	}
	if got := gen.Calls(c); got != 1 {
		t.Errorf("generator called %d times, want 1", got)
	}
}

func TestSet_MaterializesWithoutGenerating(t *testing.T) {
	gen := generator.NewCounting(generator.Table{})
	s := New(gen)
	c := world.Cell{I: 2, J: 0}

	if s.Materialized(c) {
		t.Fatal("fresh cell reported as materialized")
	}
	s.Set(c, 4)
	if !s.Materialized(c) {
		t.Error("Set did not materialize the cell")
	}
	if got := s.Get(c); got != 4 {
		t.Errorf("Get(%v) = %d, want 4", c, got)
	}
	if got := gen.Total(); got != 0 {
		t.Errorf("generator called %d times, want 0", got)
	}
}

func TestEach_Sorted(t *testing.T) {
	s := New(generator.Table{})
	s.Set(world.Cell{I: 1, J: 2}, 2)
	s.Set(world.Cell{I: -1, J: 5}, 4)
	s.Set(world.Cell{I: 1, J: -3}, 8)

	var order []world.Cell
	s.Each(func(c world.Cell, _ token.Value) { order = append(order, c) })
	want := []world.Cell{{I: -1, J: 5}, {I: 1, J: -3}, {I: 1, J: 2}}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestNew_NilGeneratorUsesDefault(t *testing.T) {
	s := New(nil)
	if s.Generator() != generator.DefaultGenerator {
		t.Error("nil generator did not fall back to DefaultGenerator")
	}
}
