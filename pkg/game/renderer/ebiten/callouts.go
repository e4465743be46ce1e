package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// addCalloutLocked adds a callout, replacing any callout on the same cell.
// Tooltips and notices are kept apart so an interaction does not hide the
// tooltip. Callers hold snapshotMutex.
func (e *EbitenRenderer) addCalloutLocked(c Callout, now int64) {
	c.CreatedAt = now
	filtered := make([]Callout, 0, len(e.snapshot.callouts)+1)
	for _, old := range e.snapshot.callouts {
		if old.Cell == c.Cell && old.Tooltip == c.Tooltip {
			continue
		}
		if old.ExpiresAt != 0 && old.ExpiresAt <= now {
			continue
		}
		filtered = append(filtered, old)
	}
	e.snapshot.callouts = append(filtered, c)
}

// clearTooltipsLocked drops the persistent tooltips. Callers hold snapshotMutex.
func (e *EbitenRenderer) clearTooltipsLocked() {
	filtered := e.snapshot.callouts[:0]
	for _, c := range e.snapshot.callouts {
		if !c.Tooltip {
			filtered = append(filtered, c)
		}
	}
	e.snapshot.callouts = filtered
}

// ClearCallouts removes all active callouts
func (e *EbitenRenderer) ClearCallouts() {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot.callouts = nil
}

// drawCallouts renders floating message boxes above their cells
func (e *EbitenRenderer) drawCallouts(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY int, now int64) {
	const padding = 6
	for _, c := range snap.callouts {
		if _, ok := snap.cells[c.Cell]; !ok {
			continue
		}
		segments := parseMarkup(c.Message)
		w := e.getTextWidth(segmentsText(segments)) + padding*2
		h := float64(lineHeight + padding)

		cx, cy := snap.cellOrigin(mapX, mapY, e.tileSize, c.Cell)
		x := cx + float64(e.tileSize)/2 - w/2
		y := cy - h - 4
		if y < float64(mapY) {
			y = cy + float64(e.tileSize) + 4
		}

		alpha := 1.0
		if c.ExpiresAt != 0 {
			remaining := float64(c.ExpiresAt - now)
			if remaining < 500 {
				alpha = remaining / 500
			}
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h),
			applyAlpha(colorPanelBackground, alpha), false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1,
			applyAlpha(c.Color, alpha), false)
		e.drawColoredTextSegments(screen, segments, x+padding, y+padding/2, alpha)
	}
}
