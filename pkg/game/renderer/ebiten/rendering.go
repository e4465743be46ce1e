package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/renderer"
)

// mapOrigin returns the top-left corner of the map for a window radius
func (e *EbitenRenderer) mapOrigin(screenWidth, radius int) (int, int) {
	side := (2*radius + 1) * e.tileSize
	x := (screenWidth - side) / 2
	if x < mapMargin {
		x = mapMargin
	}
	return x, headerHeight + mapMargin
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	now := time.Now()
	snap := e.copySnapshot(now.UnixMilli())
	if !snap.valid {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	mapX, mapY := e.mapOrigin(screenWidth, snap.radius)
	side := (2*snap.radius + 1) * e.tileSize

	e.drawHeader(screen, &snap)

	vector.DrawFilledRect(screen, float32(mapX-mapMargin/2), float32(mapY-mapMargin/2),
		float32(side+mapMargin), float32(side+mapMargin), colorMapBackground, false)

	e.drawMap(screen, &snap, mapX, mapY)
	e.drawDirectionLabels(screen, mapX, mapY, side)
	e.drawCallouts(screen, &snap, mapX, mapY, now.UnixMilli())
	e.drawStatusBar(screen, &snap, mapX, mapY+side+mapMargin)
	e.drawMessages(screen, &snap, now.UnixMilli(), screenWidth, screenHeight)
}

// drawHeader draws the title and the current positions
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot) {
	e.drawColoredText(screen, "World of Bits", mapMargin, 8, colorAction)
	info := fmt.Sprintf("view %v  player %v", snap.center, snap.status.Player)
	e.drawColoredText(screen, info, mapMargin+e.getTextWidth("World of Bits")+20, 8, colorSubtle)
}

// drawMap draws every cell of the window north-up
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY int) {
	for di := snap.radius; di >= -snap.radius; di-- {
		for dj := -snap.radius; dj <= snap.radius; dj++ {
			c := world.Cell{I: snap.center.I + di, J: snap.center.J + dj}
			v, ok := snap.cells[c]
			if !ok {
				continue
			}
			x, y := snap.cellOrigin(mapX, mapY, e.tileSize, c)
			e.drawTile(screen, getCellRenderOptions(v), x, y)
		}
	}
}

// drawTile draws one cell with its optional background and outline
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, opts CellRenderOptions, x, y float64) {
	size := float32(e.tileSize)
	if opts.HasBackground {
		vector.DrawFilledRect(screen, float32(x)+1, float32(y)+1, size-2, size-2, opts.BackgroundColor, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), size, size, 1, colorGridLine, false)
	if opts.Outline {
		vector.StrokeRect(screen, float32(x)+2, float32(y)+2, size-4, size-4, 1, colorReach, false)
	}
	e.drawScaledText(screen, opts.Icon, x+float64(e.tileSize)/2, y+float64(e.tileSize)/2, e.labelScale(), opts.Color)
}

// drawDirectionLabels draws compass labels around the map
func (e *EbitenRenderer) drawDirectionLabels(screen *ebiten.Image, mapX, mapY, side int) {
	mid := float64(side) / 2
	n, s, w, east := world.North.String(), world.South.String(), world.West.String(), world.East.String()
	e.drawColoredText(screen, n, float64(mapX)+mid-e.getTextWidth(n)/2, float64(mapY-mapMargin/2-lineHeight+2), colorSubtle)
	e.drawColoredText(screen, s, float64(mapX)+mid-e.getTextWidth(s)/2, float64(mapY+side+mapMargin/2), colorSubtle)
	e.drawColoredText(screen, w, float64(mapX-mapMargin/2)-e.getTextWidth(w)-4, float64(mapY)+mid-lineHeight/2, colorSubtle)
	e.drawColoredText(screen, east, float64(mapX+side+mapMargin/2+4), float64(mapY)+mid-lineHeight/2, colorSubtle)
}

// drawStatusBar draws the inventory status under the map
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, snap *renderSnapshot, x, y int) {
	status := snap.status.Text
	if status == "" {
		status = "Holding: nothing"
	}
	segments := parseMarkup(status)
	e.drawColoredTextSegments(screen, segments, float64(x), float64(y), 1)
	if snap.status.Won {
		w := e.getTextWidth(segmentsText(segments))
		e.drawColoredText(screen, "*", float64(x)+w+10, float64(y), e.getPulsingWinColor())
	}
}

// drawMessages draws the recent messages bottom-aligned, fading out with age
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, now int64, screenWidth, screenHeight int) {
	if len(snap.messages) == 0 {
		return
	}
	height := len(snap.messages)*lineHeight + 10
	top := screenHeight - height - 10
	vector.DrawFilledRect(screen, 10, float32(top), float32(screenWidth-20), float32(height), colorPanelBackground, false)

	for i, m := range snap.messages {
		alpha := 1.0
		if age := now - m.Timestamp; age > messageLifetime-2000 {
			alpha = float64(messageLifetime-age) / 2000
		}
		segments := parseMarkup(m.Text)
		if m.Kind == renderer.NoticeDenied && len(segments) == 1 {
			segments[0].color = colorDenied
		}
		e.drawColoredTextSegments(screen, segments, 20, float64(top+5+i*lineHeight), alpha)
	}
}
