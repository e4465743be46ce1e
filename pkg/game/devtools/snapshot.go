// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/token"
)

// Snapshot is a read-only copy of what the player currently sees
type Snapshot struct {
	Seed       int64
	Player     world.Cell
	ViewCenter world.Cell
	Radius     int
	Reach      int
	Held       token.Value
	Won        bool

	// Cells are in draw order: north to south, west to east
	Cells    []renderer.CellView
	Messages []string
}

// Row returns the cells of the window row at latitude index i
func (s Snapshot) Row(i int) []renderer.CellView {
	var row []renderer.CellView
	for _, v := range s.Cells {
		if v.Cell.I == i {
			row = append(row, v)
		}
	}
	return row
}

// Rows returns the latitude indices of the window, north first
func (s Snapshot) Rows() []int {
	rows := make([]int, 0, 2*s.Radius+1)
	for di := s.Radius; di >= -s.Radius; di-- {
		rows = append(rows, s.ViewCenter.I+di)
	}
	return rows
}
