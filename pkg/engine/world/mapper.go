package world

import "math"

// DefaultTile is the default angular size of a cell, in degrees
const DefaultTile = 1e-4

// LatLng is a geographic position in degrees
type LatLng struct {
	Lat float64
	Lng float64
}

// Bounds is the rectangle covered by a cell, in degrees
type Bounds struct {
	LatMin float64
	LngMin float64
	LatMax float64
	LngMax float64
}

// Contains reports whether p lies inside the bounds. The south and west edges
// are inclusive and the north and east edges exclusive, matching ToCell.
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.LatMin && p.Lat < b.LatMax && p.Lng >= b.LngMin && p.Lng < b.LngMax
}

// Mapper converts between geographic positions and cells.
// Cells are anchored at (0°, 0°) so that cell identity does not depend on
// where a session starts.
type Mapper struct {
	Tile float64
}

// NewMapper returns a mapper for the given tile size.
// Non-positive sizes fall back to DefaultTile.
func NewMapper(tile float64) Mapper {
	if tile <= 0 || math.IsNaN(tile) || math.IsInf(tile, 0) {
		tile = DefaultTile
	}
	return Mapper{Tile: tile}
}

func (m Mapper) tile() float64 {
	if m.Tile <= 0 {
		return DefaultTile
	}
	return m.Tile
}

// ToCell returns the cell containing p
func (m Mapper) ToCell(p LatLng) Cell {
	t := m.tile()
	return Cell{
		I: int(math.Floor(p.Lat / t)),
		J: int(math.Floor(p.Lng / t)),
	}
}

// CellBounds returns the rectangle covered by c. Adjacent cells share exactly
// one edge because both edges are computed from integer multiples of the tile.
func (m Mapper) CellBounds(c Cell) Bounds {
	t := m.tile()
	return Bounds{
		LatMin: float64(c.I) * t,
		LngMin: float64(c.J) * t,
		LatMax: float64(c.I+1) * t,
		LngMax: float64(c.J+1) * t,
	}
}

// CellCenter returns the midpoint of c's bounds
func (m Mapper) CellCenter(c Cell) LatLng {
	b := m.CellBounds(c)
	return LatLng{
		Lat: (b.LatMin + b.LatMax) / 2,
		Lng: (b.LngMin + b.LngMax) / 2,
	}
}

// Distance returns the Euclidean distance between a and b in cell units.
// It is meant for gating interactions, not for geographic accuracy.
func Distance(a, b Cell) float64 {
	di := float64(a.I - b.I)
	dj := float64(a.J - b.J)
	return math.Sqrt(di*di + dj*dj)
}

// WithinRadius reports whether b is no further than radius cells from a.
// It compares squared integers so that boundary cells are never lost to
// floating point rounding.
func WithinRadius(a, b Cell, radius int) bool {
	if radius < 0 {
		return false
	}
	di := int64(a.I - b.I)
	dj := int64(a.J - b.J)
	r := int64(radius)
	return di*di+dj*dj <= r*r
}
