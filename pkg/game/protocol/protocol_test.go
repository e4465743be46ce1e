package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/token"
)

func TestDecodeClient_Valid(t *testing.T) {
	m, err := DecodeClient([]byte(`{"type":"activate","i":1,"j":-3}`))
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if m.Cell() != (world.Cell{I: 1, J: -3}) {
		t.Errorf("Cell = %v", m.Cell())
	}

	m, err = DecodeClient([]byte(`{"type":"viewport","lat":36.99,"lng":-122.05}`))
	if err != nil {
		t.Fatalf("viewport: %v", err)
	}
	if ll := m.LatLng(); ll.Lat != 36.99 || ll.Lng != -122.05 {
		t.Errorf("LatLng = %v", ll)
	}

	m, err = DecodeClient([]byte(`{"type":"move","dir":"west"}`))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if d, ok := m.Direction(); !ok || d != world.West {
		t.Errorf("Direction = %v, %v", d, ok)
	}

	if _, err := DecodeClient([]byte(`{"type":"refresh"}`)); err != nil {
		t.Errorf("refresh: %v", err)
	}
}

func TestDecodeClient_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", `{`, ErrBadRequest},
		{"not an object", `[1,2]`, ErrBadRequest},
		{"unknown type", `{"type":"teleport"}`, ErrUnknownType},
		{"missing type", `{"i":1}`, ErrUnknownType},
		{"activate without j", `{"type":"activate","i":1}`, ErrBadRequest},
		{"fractional index", `{"type":"activate","i":1.5,"j":0}`, ErrBadRequest},
		{"latitude out of range", `{"type":"viewport","lat":91,"lng":0}`, ErrBadRequest},
		{"bad direction", `{"type":"move","dir":"up"}`, ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeClient([]byte(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeClient(%s) error = %v, want %v", tt.raw, err, tt.want)
			}
		})
	}
}

func TestServerMessages(t *testing.T) {
	v := renderer.CellView{
		Cell:   world.Cell{I: 2, J: 3},
		Value:  token.Value(8),
		Bounds: world.Bounds{LatMin: 1, LngMin: 2, LatMax: 3, LngMax: 4},
	}
	b, err := json.Marshal(NewCell(TypeUpdate, v))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got["type"] != "update" || got["label"] != "8" || got["i"] != 2.0 {
		t.Errorf("cell message = %s", b)
	}
	if _, ok := got["is_player"]; ok {
		t.Errorf("is_player should be omitted when false: %s", b)
	}

	st := NewStatus(renderer.Status{Held: 4, Text: "Holding: ITEM{4}"})
	if st.Text != "Holding: 4" || st.Type != TypeStatus {
		t.Errorf("status message = %+v", st)
	}

	n := NewNotice(renderer.Notice{Kind: renderer.NoticeDenied, Text: "far DENIED{away}"})
	if n.Kind != "denied" || n.Text != "far away" {
		t.Errorf("notice message = %+v", n)
	}
	if NewClear().Type != TypeClear {
		t.Error("clear message type")
	}
}
