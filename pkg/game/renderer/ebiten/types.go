package ebiten

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "worldofbits/pkg/engine/input"
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/renderer"
)

// Callout represents a floating message displayed near a cell
type Callout struct {
	Cell      world.Cell
	Message   string
	Color     color.Color
	Tooltip   bool  // Tooltips stay until the player moves
	ExpiresAt int64 // Unix milliseconds when the callout expires (0 = never)
	CreatedAt int64
}

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Kind      renderer.NoticeKind
	Timestamp int64 // Unix milliseconds when the message was added
}

// renderSnapshot holds a consistent copy of what the engine drew, taken
// under snapshotMutex so Draw never sees a half-applied update
type renderSnapshot struct {
	valid    bool
	cells    map[world.Cell]renderer.CellView
	center   world.Cell
	radius   int
	status   renderer.Status
	messages []messageEntry
	callouts []Callout
}

// CellRenderOptions describes how a cell should be drawn on the map.
type CellRenderOptions struct {
	Icon            string
	Color           color.Color
	HasBackground   bool
	BackgroundColor color.Color
	Outline         bool
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// requestKind selects which engine entry point a request drives
type requestKind int

const (
	requestIntent requestKind = iota
	requestActivate
	requestViewport
)

// request carries one input event from Update to the game loop goroutine
type request struct {
	kind   requestKind
	intent engineinput.Intent
	cell   world.Cell
}

// dragState tracks a left-button press that may become a pan
type dragState struct {
	active   bool
	dragging bool
	startX   int
	startY   int
}

// EbitenRenderer is the Ebiten-based graphical frontend. It implements
// renderer.Surface for the engine and ebiten.Game for the window.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	face *text.GoXFace

	// Surface state, written by the engine and copied into snapshot
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan request

	// Set once the engine reports that the player quit
	quitting atomic.Bool

	windowOpenedLogged bool

	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	drag dragState
}
