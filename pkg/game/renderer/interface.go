package renderer

import (
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/token"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleToken
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleWin
	StyleSubtle
	StylePlayer
	StyleReach
)

// NoticeKind classifies a notice for styling
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeDenied
	NoticeWin
	// NoticeTooltip is attached to a cell and is not part of the message log
	NoticeTooltip
)

// Notice is a player-facing message produced by an event
type Notice struct {
	Kind NoticeKind
	Text string
	Cell world.Cell
}

// CellView is everything a surface needs to draw one visible cell
type CellView struct {
	Cell     world.Cell
	Value    token.Value
	Bounds   world.Bounds
	Center   world.LatLng
	IsPlayer bool
	InReach  bool
}

// Label returns the text drawn on the cell
func (v CellView) Label() string {
	return v.Value.String()
}

// Status is the inventory/position summary shown beside the map
type Status struct {
	Held       token.Value
	Player     world.Cell
	ViewCenter world.Cell
	Won        bool
	Text       string
}

// Surface is the drawing collaborator the engine renders into.
// Implementations include the terminal, Ebiten and websocket frontends.
type Surface interface {
	// Clear removes every drawn cell
	Clear()

	// DrawCell draws one visible cell and its label
	DrawCell(v CellView)

	// UpdateCell redraws a cell that is already on the surface
	UpdateCell(v CellView)

	// ShowStatus displays the inventory status
	ShowStatus(s Status)

	// Notify shows a notice to the player
	Notify(n Notice)
}

// Discard is a Surface that draws nothing
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()              {}
func (discard) DrawCell(CellView)   {}
func (discard) UpdateCell(CellView) {}
func (discard) ShowStatus(Status)   {}
func (discard) Notify(Notice)       {}
