// Package world provides generic 2D grid primitives anchored to geographic
// coordinates. These are engine-level constructs usable by any tile-based game
// laid over a map.
package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell identifies a grid square. I counts tiles north of the equator and J
// counts tiles east of the prime meridian, so (0,0) is the square whose
// south-west corner sits on the geographic origin.
type Cell struct {
	I int
	J int
}

// NewCell returns the cell at (i, j)
func NewCell(i, j int) Cell {
	return Cell{I: i, J: j}
}

// Key returns the canonical "i:j" string for the cell
func (c Cell) Key() string {
	return strconv.Itoa(c.I) + ":" + strconv.Itoa(c.J)
}

// String implements fmt.Stringer
func (c Cell) String() string {
	return "(" + c.Key() + ")"
}

// ParseKey parses a key produced by Cell.Key
func ParseKey(key string) (Cell, error) {
	is, js, ok := strings.Cut(key, ":")
	if !ok {
		return Cell{}, fmt.Errorf("cell key %q: missing separator", key)
	}
	i, err := strconv.Atoi(is)
	if err != nil {
		return Cell{}, fmt.Errorf("cell key %q: %w", key, err)
	}
	j, err := strconv.Atoi(js)
	if err != nil {
		return Cell{}, fmt.Errorf("cell key %q: %w", key, err)
	}
	return Cell{I: i, J: j}, nil
}

// Offset returns the cell di rows north and dj columns east of c
func (c Cell) Offset(di, dj int) Cell {
	return Cell{I: c.I + di, J: c.J + dj}
}

// Step returns the adjacent cell in the given direction.
// Invalid directions return c unchanged.
func (c Cell) Step(dir Direction) Cell {
	di, dj := dir.Delta()
	return c.Offset(di, dj)
}

// Neighbors returns the four orthogonally adjacent cells in N, E, S, W order
func (c Cell) Neighbors() []Cell {
	dirs := AllDirections()
	out := make([]Cell, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, c.Step(d))
	}
	return out
}
