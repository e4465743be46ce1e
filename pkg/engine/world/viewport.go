package world

import (
	"github.com/zyedidia/generic/mapset"
)

// CellSet is a set of cells
type CellSet = mapset.Set[Cell]

// NewCellSet returns a set holding the given cells
func NewCellSet(cells ...Cell) CellSet {
	s := mapset.New[Cell]()
	for _, c := range cells {
		s.Put(c)
	}
	return s
}

// ComputeVisible returns every cell in the square window of the given radius
// around center: (center.I+di, center.J+dj) for di, dj in [-radius, radius].
// A negative radius yields an empty set.
func ComputeVisible(center Cell, radius int) CellSet {
	return NewCellSet(VisibleCells(center, radius)...)
}

// VisibleCells returns the same window as ComputeVisible as an ordered slice,
// north to south and west to east, so callers can draw in a stable order.
func VisibleCells(center Cell, radius int) []Cell {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	out := make([]Cell, 0, side*side)
	for di := radius; di >= -radius; di-- {
		for dj := -radius; dj <= radius; dj++ {
			out = append(out, center.Offset(di, dj))
		}
	}
	return out
}

// InWindow reports whether c lies in the square window around center
func InWindow(center, c Cell, radius int) bool {
	return chebyshevDist(c.I-center.I, c.J-center.J) <= radius
}

// ReachableCells returns the cells within a Euclidean radius of center,
// the disc a player can interact with.
func ReachableCells(center Cell, radius int) CellSet {
	s := mapset.New[Cell]()
	for _, c := range VisibleCells(center, radius) {
		if WithinRadius(center, c, radius) {
			s.Put(c)
		}
	}
	return s
}

// chebyshevDist returns Chebyshev (chessboard) distance for (di, dj).
func chebyshevDist(di, dj int) int {
	if di < 0 {
		di = -di
	}
	if dj < 0 {
		dj = -dj
	}
	if di > dj {
		return di
	}
	return dj
}
