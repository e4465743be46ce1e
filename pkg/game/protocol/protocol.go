// Package protocol defines the JSON messages exchanged with browser clients
// over the websocket bridge.
package protocol

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/renderer"
)

// Client → server message types
const (
	TypeActivate = "activate"
	TypeViewport = "viewport"
	TypeMove     = "move"
	TypeRefresh  = "refresh"
)

// Server → client message types
const (
	TypeClear  = "clear"
	TypeCell   = "cell"
	TypeUpdate = "update"
	TypeStatus = "status"
	TypeNotice = "notice"
)

var (
	ErrUnknownType = errors.New("unknown message type")
	ErrBadRequest  = errors.New("bad request")
)

//go:embed client.schema.json
var clientSchemaJSON []byte

const clientSchemaURL = "client.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func clientSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(clientSchemaURL, bytes.NewReader(clientSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile(clientSchemaURL)
	})
	return schema, schemaErr
}

// ClientMessage is any message a client may send. Only the fields for Type
// are meaningful.
type ClientMessage struct {
	Type string  `json:"type"`
	I    int     `json:"i,omitempty"`
	J    int     `json:"j,omitempty"`
	Lat  float64 `json:"lat,omitempty"`
	Lng  float64 `json:"lng,omitempty"`
	Dir  string  `json:"dir,omitempty"`
}

// Cell returns the target of an activate message
func (m ClientMessage) Cell() world.Cell {
	return world.Cell{I: m.I, J: m.J}
}

// LatLng returns the center of a viewport message
func (m ClientMessage) LatLng() world.LatLng {
	return world.LatLng{Lat: m.Lat, Lng: m.Lng}
}

// Direction returns the direction of a move message
func (m ClientMessage) Direction() (world.Direction, bool) {
	return world.ParseDirection(m.Dir)
}

// DecodeClient validates raw against the client schema and decodes it
func DecodeClient(raw []byte) (ClientMessage, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return ClientMessage{}, fmt.Errorf("%w: message must be an object", ErrBadRequest)
	}
	switch obj["type"] {
	case TypeActivate, TypeViewport, TypeMove, TypeRefresh:
	default:
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrUnknownType, obj["type"])
	}

	s, err := clientSchema()
	if err != nil {
		return ClientMessage{}, fmt.Errorf("compile client schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	var m ClientMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return m, nil
}

// CellMsg is the wire form of a drawn cell
type CellMsg struct {
	Type     string     `json:"type"`
	I        int        `json:"i"`
	J        int        `json:"j"`
	Value    int        `json:"value"`
	Label    string     `json:"label"`
	Bounds   [4]float64 `json:"bounds"`
	IsPlayer bool       `json:"is_player,omitempty"`
	InReach  bool       `json:"in_reach,omitempty"`
}

// StatusMsg is the wire form of the inventory status
type StatusMsg struct {
	Type   string `json:"type"`
	Held   int    `json:"held"`
	Text   string `json:"text"`
	Won    bool   `json:"won"`
	Player [2]int `json:"player"`
	View   [2]int `json:"view"`
}

// NoticeMsg is the wire form of a notice
type NoticeMsg struct {
	Type string `json:"type"`
	Kind string `json:"kind"`
	Text string `json:"text"`
	I    int    `json:"i"`
	J    int    `json:"j"`
}

// ClearMsg tells the client to remove every drawn cell
type ClearMsg struct {
	Type string `json:"type"`
}

// NewClear builds a clear message
func NewClear() ClearMsg {
	return ClearMsg{Type: TypeClear}
}

// NewCell builds a cell or update message from a view
func NewCell(typ string, v renderer.CellView) CellMsg {
	return CellMsg{
		Type:     typ,
		I:        v.Cell.I,
		J:        v.Cell.J,
		Value:    int(v.Value),
		Label:    v.Label(),
		Bounds:   [4]float64{v.Bounds.LatMin, v.Bounds.LngMin, v.Bounds.LatMax, v.Bounds.LngMax},
		IsPlayer: v.IsPlayer,
		InReach:  v.InReach,
	}
}

// NewStatus builds a status message. Markup is stripped from the text.
func NewStatus(s renderer.Status) StatusMsg {
	return StatusMsg{
		Type:   TypeStatus,
		Held:   int(s.Held),
		Text:   renderer.StripMarkup(s.Text),
		Won:    s.Won,
		Player: [2]int{s.Player.I, s.Player.J},
		View:   [2]int{s.ViewCenter.I, s.ViewCenter.J},
	}
}

// NewNotice builds a notice message. Markup is stripped from the text.
func NewNotice(n renderer.Notice) NoticeMsg {
	return NoticeMsg{
		Type: TypeNotice,
		Kind: NoticeKindName(n.Kind),
		Text: renderer.StripMarkup(n.Text),
		I:    n.Cell.I,
		J:    n.Cell.J,
	}
}

// NoticeKindName returns the wire name of a notice kind
func NoticeKindName(k renderer.NoticeKind) string {
	switch k {
	case renderer.NoticeDenied:
		return "denied"
	case renderer.NoticeWin:
		return "win"
	case renderer.NoticeTooltip:
		return "tooltip"
	default:
		return "info"
	}
}
