package ebiten

import (
	"image/color"
	"time"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/renderer"
)

// Clear implements renderer.Surface
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot.cells = make(map[world.Cell]renderer.CellView)
	e.snapshot.radius = 0
}

// DrawCell implements renderer.Surface
func (e *EbitenRenderer) DrawCell(v renderer.CellView) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	if e.snapshot.cells == nil {
		e.snapshot.cells = make(map[world.Cell]renderer.CellView)
	}
	e.snapshot.cells[v.Cell] = v

	// Cells arrive as a full square around the view centre
	side := 1
	for side*side < len(e.snapshot.cells) {
		side++
	}
	e.snapshot.radius = (side - 1) / 2
}

// UpdateCell implements renderer.Surface
func (e *EbitenRenderer) UpdateCell(v renderer.CellView) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	if _, ok := e.snapshot.cells[v.Cell]; ok {
		e.snapshot.cells[v.Cell] = v
	}
}

// ShowStatus implements renderer.Surface
func (e *EbitenRenderer) ShowStatus(s renderer.Status) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	if e.snapshot.valid && s.Player != e.snapshot.status.Player {
		e.clearTooltipsLocked()
	}
	e.snapshot.status = s
	e.snapshot.center = s.ViewCenter
	e.snapshot.valid = true
}

// Notify implements renderer.Surface. Tooltips become persistent callouts on
// their cell; every other notice is also added to the message pane.
func (e *EbitenRenderer) Notify(n renderer.Notice) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	now := time.Now().UnixMilli()
	if n.Kind == renderer.NoticeTooltip {
		e.addCalloutLocked(Callout{Cell: n.Cell, Message: n.Text, Color: ColorCalloutInfo, Tooltip: true}, now)
		return
	}

	e.addCalloutLocked(Callout{
		Cell:      n.Cell,
		Message:   n.Text,
		Color:     calloutColor(n.Kind),
		ExpiresAt: now + calloutLifetime,
	}, now)

	e.snapshot.messages = append(e.snapshot.messages, messageEntry{Text: n.Text, Kind: n.Kind, Timestamp: now})
	if len(e.snapshot.messages) > messageLines {
		e.snapshot.messages = e.snapshot.messages[len(e.snapshot.messages)-messageLines:]
	}
}

// calloutColor maps a notice kind to a callout colour
func calloutColor(k renderer.NoticeKind) color.Color {
	switch k {
	case renderer.NoticeDenied:
		return ColorCalloutDanger
	case renderer.NoticeWin:
		return ColorCalloutWin
	default:
		return ColorCalloutSuccess
	}
}

// copySnapshot returns a copy of the surface state with expired callouts and
// messages dropped, safe to read without the lock
func (e *EbitenRenderer) copySnapshot(now int64) renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()

	snap := e.snapshot
	snap.cells = make(map[world.Cell]renderer.CellView, len(e.snapshot.cells))
	for c, v := range e.snapshot.cells {
		snap.cells[c] = v
	}

	snap.callouts = nil
	for _, c := range e.snapshot.callouts {
		if c.ExpiresAt == 0 || c.ExpiresAt > now {
			snap.callouts = append(snap.callouts, c)
		}
	}

	snap.messages = nil
	for _, m := range e.snapshot.messages {
		if now-m.Timestamp < messageLifetime {
			snap.messages = append(snap.messages, m)
		}
	}
	return snap
}

// cellAt returns the drawn cell under screen position x, y
func (snap *renderSnapshot) cellAt(mapX, mapY, tileSize, x, y int) (world.Cell, bool) {
	if x < mapX || y < mapY {
		return world.Cell{}, false
	}
	col := (x - mapX) / tileSize
	row := (y - mapY) / tileSize
	side := 2*snap.radius + 1
	if col >= side || row >= side {
		return world.Cell{}, false
	}
	c := world.Cell{I: snap.center.I + snap.radius - row, J: snap.center.J - snap.radius + col}
	if _, ok := snap.cells[c]; !ok {
		return world.Cell{}, false
	}
	return c, true
}

// cellOrigin returns the screen position of the top-left corner of c
func (snap *renderSnapshot) cellOrigin(mapX, mapY, tileSize int, c world.Cell) (float64, float64) {
	col := c.J - (snap.center.J - snap.radius)
	row := (snap.center.I + snap.radius) - c.I
	return float64(mapX + col*tileSize), float64(mapY + row*tileSize)
}
