// Package viewport decides which cells are visible and draws them from the
// current store state.
package viewport

import (
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/store"
)

// DefaultRadius is the default visibility radius, in cells
const DefaultRadius = 8

// Materializer renders the square window of cells around a center cell
type Materializer struct {
	Mapper world.Mapper
	Radius int

	store   *store.Store
	surface renderer.Surface

	// player and reach decorate views; they do not change which cells are drawn
	player      world.Cell
	reachRadius int

	center   world.Cell
	rendered bool
	visible  world.CellSet
}

// New creates a materializer drawing cells from st onto surface
func New(m world.Mapper, radius int, st *store.Store, surface renderer.Surface) *Materializer {
	if surface == nil {
		surface = renderer.Discard
	}
	if radius < 0 {
		radius = 0
	}
	return &Materializer{
		Mapper:  m,
		Radius:  radius,
		store:   st,
		surface: surface,
		visible: world.NewCellSet(),
	}
}

// SetSurface swaps the drawing surface; the next Render draws onto it
func (m *Materializer) SetSurface(s renderer.Surface) {
	if s == nil {
		s = renderer.Discard
	}
	m.surface = s
	m.rendered = false
}

// SetPlayer records the player's cell and interaction radius for decoration
func (m *Materializer) SetPlayer(c world.Cell, reach int) {
	m.player = c
	m.reachRadius = reach
}

// Center returns the cell the last render was centred on
func (m *Materializer) Center() world.Cell {
	return m.center
}

// Visible reports whether c is part of the last rendered window
func (m *Materializer) Visible(c world.Cell) bool {
	return m.rendered && m.visible.Has(c)
}

// View builds the view of c from the current store value
func (m *Materializer) View(c world.Cell) renderer.CellView {
	return renderer.CellView{
		Cell:     c,
		Value:    m.store.Get(c),
		Bounds:   m.Mapper.CellBounds(c),
		Center:   m.Mapper.CellCenter(c),
		IsPlayer: c == m.player,
		InReach:  world.WithinRadius(m.player, c, m.reachRadius),
	}
}

// Render clears the surface and draws every cell in the window around center,
// always reading the current value from the store
func (m *Materializer) Render(center world.Cell) {
	m.surface.Clear()
	m.center = center
	m.visible = world.ComputeVisible(center, m.Radius)
	for _, c := range world.VisibleCells(center, m.Radius) {
		m.surface.DrawCell(m.View(c))
	}
	m.rendered = true
}

// Recenter renders around center only if it differs from the current center.
// It reports whether a render happened.
func (m *Materializer) Recenter(center world.Cell) bool {
	if m.rendered && center == m.center {
		return false
	}
	m.Render(center)
	return true
}

// Refresh redraws the current window
func (m *Materializer) Refresh() {
	m.Render(m.center)
}

// Update redraws a single cell if it is visible
func (m *Materializer) Update(c world.Cell) {
	if !m.Visible(c) {
		return
	}
	m.surface.UpdateCell(m.View(c))
}
