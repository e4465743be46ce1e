package generator

import (
	"sync"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/token"
)

// Table is a fixed layout: listed cells hold their value, every other cell
// is empty. Used for hand-built developer maps and tests.
type Table map[world.Cell]token.Value

// Name implements Generator
func (t Table) Name() string {
	return "table"
}

// Generate implements Generator
func (t Table) Generate(c world.Cell) token.Value {
	return t[c]
}

// Counting wraps a Generator and records how often each cell was generated
type Counting struct {
	Inner Generator

	mu    sync.Mutex
	calls map[world.Cell]int
}

// NewCounting wraps inner
func NewCounting(inner Generator) *Counting {
	return &Counting{Inner: inner, calls: make(map[world.Cell]int)}
}

// Name implements Generator
func (c *Counting) Name() string {
	return "counting(" + c.Inner.Name() + ")"
}

// Generate implements Generator
func (c *Counting) Generate(cell world.Cell) token.Value {
	c.mu.Lock()
	c.calls[cell]++
	c.mu.Unlock()
	return c.Inner.Generate(cell)
}

// Calls returns how many times cell was generated
func (c *Counting) Calls(cell world.Cell) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[cell]
}

// Total returns the number of Generate calls across all cells
func (c *Counting) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}
