package ebiten

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "worldofbits/pkg/engine/input"
	"worldofbits/pkg/engine/world"
)

// repeatKeys are held-to-repeat keys and the raw codes they produce
var repeatKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// pressKeys trigger once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyT, "t"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyHome, "home"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyQ, "q"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.quitting.Load() {
		return ebiten.Termination
	}

	e.handleZoom()

	if req, ok := e.checkMouse(); ok {
		e.send(req)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.send(request{kind: requestIntent, intent: intent})
	}
	return nil
}

// send hands a request to the game loop without blocking the frame
func (e *EbitenRenderer) send(req request) {
	select {
	case e.inputChan <- req:
	default:
		// Channel full, drop input
	}
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(defaultTileSize)
	}
}

// setTileSize clamps and applies a new tile size
func (e *EbitenRenderer) setTileSize(size int) {
	if size < minTileSize {
		size = minTileSize
	}
	if size > maxTileSize {
		size = maxTileSize
	}
	e.tileSize = size
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string, now int64) bool {
	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// checkInput checks for keyboard input and returns the corresponding Intent.
// Shift with an arrow pans instead of moving.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	now := time.Now().UnixMilli()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	for _, k := range repeatKeys {
		if !e.shouldRepeatKey(ebiten.IsKeyPressed(k.key), "key_"+k.code, now) {
			continue
		}
		code := k.code
		if shift {
			code = "shift_" + code
		}
		return resolveKey(code)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && shift {
		return resolveKey("?")
	}
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return resolveKey(k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// resolveKey runs a keyboard code through the tiered input bindings
func resolveKey(code string) engineinput.Intent {
	return engineinput.Resolve(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	})
}

// checkMouse turns a left click into a cell activation and a left drag
// into a viewport change
func (e *EbitenRenderer) checkMouse() (request, bool) {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.drag = dragState{active: true, startX: x, startY: y}
		return request{}, false
	}
	if !e.drag.active {
		return request{}, false
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if abs(x-e.drag.startX) > e.tileSize/2 || abs(y-e.drag.startY) > e.tileSize/2 {
			e.drag.dragging = true
		}
		return request{}, false
	}

	// Released
	drag := e.drag
	e.drag = dragState{}
	snap := e.copySnapshot(time.Now().UnixMilli())
	if !snap.valid {
		return request{}, false
	}
	if drag.dragging {
		return request{kind: requestViewport, cell: dragTarget(snap.center, x-drag.startX, y-drag.startY, e.tileSize)}, true
	}
	mapX, mapY := e.mapOrigin(e.windowWidth, snap.radius)
	c, ok := snap.cellAt(mapX, mapY, e.tileSize, x, y)
	if !ok {
		return request{}, false
	}
	return request{kind: requestActivate, cell: c}, true
}

// dragTarget returns the new view centre after dragging the map by dx, dy
// pixels. Dragging the map down reveals cells to the north.
func dragTarget(center world.Cell, dx, dy, tileSize int) world.Cell {
	di := int(math.Round(float64(dy) / float64(tileSize)))
	dj := -int(math.Round(float64(dx) / float64(tileSize)))
	return center.Offset(di, dj)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
