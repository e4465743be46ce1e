package gameplay

import (
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/journal"
	"worldofbits/pkg/game/renderer"
)

// Move steps the player one cell towards dir and recentres the view on the
// new cell. The interaction range follows the player.
func (e *Engine) Move(dir world.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveLocked(dir)
}

func (e *Engine) moveLocked(dir world.Direction) {
	if !dir.IsValid() {
		return
	}
	next := e.game.Player.Cell.Step(dir)
	e.game.MovePlayer(next)
	e.view.SetPlayer(next, e.rules.InteractRadius)
	e.view.Render(next)
	e.showStatusLocked()
	e.logMessage(renderer.NoticeInfo, next, "MOVED", dir.String())
	if e.game.Moves <= movementHintLimit {
		e.showYouAreHere()
	}
	e.record(journal.Entry{Kind: "move", Cell: next})
}

// OnViewportChanged recentres the view on the cell containing center. It
// redraws only when that cell differs from the current view center; the
// player does not move.
func (e *Engine) OnViewportChanged(center world.LatLng) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.panToLocked(e.mapper.ToCell(center))
}

// Pan moves the view one cell towards dir without moving the player
func (e *Engine) Pan(dir world.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.panLocked(dir)
}

func (e *Engine) panLocked(dir world.Direction) {
	if !dir.IsValid() {
		return
	}
	next := e.game.ViewCenter.Step(dir)
	if e.panToLocked(next) {
		e.logMessage(renderer.NoticeInfo, next, "PANNED", next.String())
	}
}

// Recenter returns the view to the player
func (e *Engine) Recenter() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recenterLocked()
}

func (e *Engine) recenterLocked() {
	player := e.game.Player.Cell
	if e.panToLocked(player) {
		e.logMessage(renderer.NoticeInfo, player, "RECENTERED")
	}
}

func (e *Engine) panToLocked(c world.Cell) bool {
	e.game.ViewCenter = c
	if !e.view.Recenter(c) {
		return false
	}
	e.showStatusLocked()
	e.record(journal.Entry{Kind: "pan", Cell: c})
	return true
}
