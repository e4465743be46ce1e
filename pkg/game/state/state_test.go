package state

import (
	"fmt"
	"testing"

	"worldofbits/pkg/engine/world"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame(world.Cell{})
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "m3" || g.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("ClearMessages left %d messages", len(g.Messages))
	}
}

func TestInventorySlot(t *testing.T) {
	g := NewGame(world.Cell{})
	if g.IsHolding() {
		t.Fatal("new game starts holding a token")
	}
	g.Hold(4)
	if !g.IsHolding() || g.Player.Held != 4 {
		t.Fatalf("after Hold(4): Held = %d", g.Player.Held)
	}
	if got := g.TakeHeld(); got != 4 {
		t.Errorf("TakeHeld() = %d, want 4", got)
	}
	if g.IsHolding() {
		t.Error("slot still occupied after TakeHeld")
	}
}

func TestMovePlayer_RecentresView(t *testing.T) {
	g := NewGame(world.Cell{I: 1, J: 1})
	g.ViewCenter = world.Cell{I: 9, J: 9}
	g.MovePlayer(world.Cell{I: 2, J: 1})
	if g.Player.Cell != (world.Cell{I: 2, J: 1}) || g.ViewCenter != g.Player.Cell {
		t.Errorf("after MovePlayer: player %v, view %v", g.Player.Cell, g.ViewCenter)
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves)
	}
}
