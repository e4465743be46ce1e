package remote

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/config"
	"worldofbits/pkg/game/gameplay"
	"worldofbits/pkg/game/generator"
	"worldofbits/pkg/game/renderer"
)

// wireMsg covers every server message shape
type wireMsg struct {
	Type   string `json:"type"`
	I      int    `json:"i"`
	J      int    `json:"j"`
	Value  int    `json:"value"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Held   int    `json:"held"`
	Player [2]int `json:"player"`
	View   [2]int `json:"view"`
}

func newTestServer(t *testing.T, gen generator.Generator) *websocket.Conn {
	t.Helper()
	factory := func(s renderer.Surface) *gameplay.Engine {
		cfg := config.Defaults()
		cfg.Start = config.Position{}
		cfg.GridRadius = 1
		return gameplay.NewEngine(cfg, gameplay.Options{Surface: s, Generator: gen, DumpDir: t.TempDir()})
	}
	srv := NewServer(factory, log.New(io.Discard, "[remote] ", log.LstdFlags))
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads messages until done returns true and returns all of them
func readUntil(t *testing.T, conn *websocket.Conn, done func(wireMsg) bool) []wireMsg {
	t.Helper()
	var got []wireMsg
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read after %d messages: %v", len(got), err)
		}
		var m wireMsg
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("decode %s: %v", b, err)
		}
		got = append(got, m)
		if done(m) {
			return got
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, raw string) {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(raw)); err != nil {
		t.Fatalf("write %s: %v", raw, err)
	}
}

func isTooltip(m wireMsg) bool { return m.Type == "notice" && m.Kind == "tooltip" }

func TestSessionStartDrawsWindow(t *testing.T) {
	conn := newTestServer(t, generator.Table{})
	msgs := readUntil(t, conn, isTooltip)

	if msgs[0].Type != "clear" {
		t.Errorf("first message = %q, want clear", msgs[0].Type)
	}
	cells := 0
	for _, m := range msgs {
		if m.Type == "cell" {
			cells++
		}
	}
	if cells != 9 {
		t.Errorf("cells = %d, want 9", cells)
	}
}

func TestActivateOverWebsocket(t *testing.T) {
	conn := newTestServer(t, generator.Table{{I: 1, J: 1}: 4})
	readUntil(t, conn, isTooltip)

	send(t, conn, `{"type":"activate","i":1,"j":1}`)
	msgs := readUntil(t, conn, func(m wireMsg) bool { return m.Type == "notice" })

	var update, status *wireMsg
	for i := range msgs {
		switch msgs[i].Type {
		case "update":
			update = &msgs[i]
		case "status":
			status = &msgs[i]
		}
	}
	if update == nil || update.I != 1 || update.J != 1 || update.Value != 0 {
		t.Errorf("update = %+v, want emptied cell (1,1)", update)
	}
	if status == nil || status.Held != 4 {
		t.Errorf("status = %+v, want held 4", status)
	}
	last := msgs[len(msgs)-1]
	if last.Kind != "info" || !strings.Contains(last.Text, "4") {
		t.Errorf("notice = %+v", last)
	}
	if strings.Contains(last.Text, "{") {
		t.Errorf("notice text still has markup: %q", last.Text)
	}

	// Out of range is a denied notice, not an error
	send(t, conn, `{"type":"activate","i":9,"j":9}`)
	msgs = readUntil(t, conn, func(m wireMsg) bool { return m.Type == "notice" })
	if last := msgs[len(msgs)-1]; last.Kind != "denied" {
		t.Errorf("out of range notice = %+v", last)
	}
}

func TestRejectsBadMessages(t *testing.T) {
	conn := newTestServer(t, generator.Table{})
	readUntil(t, conn, isTooltip)

	send(t, conn, `{"type":"teleport"}`)
	m := readUntil(t, conn, func(m wireMsg) bool { return m.Type == "notice" })
	if got := m[len(m)-1]; got.Kind != "denied" || got.Text != "unknown message type" {
		t.Errorf("unknown type notice = %+v", got)
	}

	send(t, conn, `{"type":"activate","i":"x"}`)
	m = readUntil(t, conn, func(m wireMsg) bool { return m.Type == "notice" })
	if got := m[len(m)-1]; got.Kind != "denied" || got.Text != "bad request" {
		t.Errorf("bad request notice = %+v", got)
	}

	// The session survives bad input
	send(t, conn, `{"type":"refresh"}`)
	readUntil(t, conn, func(m wireMsg) bool { return m.Type == "status" })
}

func TestMoveAndViewport(t *testing.T) {
	conn := newTestServer(t, generator.Table{})
	readUntil(t, conn, isTooltip)

	send(t, conn, `{"type":"move","dir":"north"}`)
	// Early moves end with the tooltip on the new cell
	msgs := readUntil(t, conn, isTooltip)
	for _, m := range msgs {
		if m.Type == "status" && (m.Player != [2]int{1, 0} || m.View != [2]int{1, 0}) {
			t.Errorf("status after move = %+v", m)
		}
	}
	if tip := msgs[len(msgs)-1]; tip.I != 1 || tip.J != 0 {
		t.Errorf("tooltip at (%d,%d), want (1,0)", tip.I, tip.J)
	}

	center := world.NewMapper(world.DefaultTile).CellCenter(world.Cell{I: 5, J: -7})
	raw, _ := json.Marshal(map[string]any{"type": "viewport", "lat": center.Lat, "lng": center.Lng})
	send(t, conn, string(raw))
	msgs = readUntil(t, conn, func(m wireMsg) bool { return m.Type == "status" })
	if msgs[0].Type != "clear" {
		t.Errorf("viewport change did not clear first: %+v", msgs[0])
	}
	if got := msgs[len(msgs)-1]; got.Player != [2]int{1, 0} || got.View != [2]int{5, -7} {
		t.Errorf("status after pan = %+v", got)
	}
}
