package state

import (
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/token"
)

const maxMessages = 5

// Player is the single player: a position and a one-slot inventory
type Player struct {
	Cell world.Cell
	Held token.Value
}

// Game represents the state of one World of Bits session
type Game struct {
	Player Player

	// ViewCenter is the cell the viewport is centred on. It follows the
	// player on movement and the map on pans.
	ViewCenter world.Cell

	Messages []string

	// Won is set the first time a craft reaches the target value.
	// Winning does not end the session.
	Won bool

	Interactions int
	Crafts       int
	Moves        int

	Quit bool
}

// NewGame creates a new game with the player standing on start
func NewGame(start world.Cell) *Game {
	return &Game{
		Player:     Player{Cell: start},
		ViewCenter: start,
		Messages:   make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// IsHolding reports whether the player's inventory slot is occupied
func (g *Game) IsHolding() bool {
	return !g.Player.Held.IsEmpty()
}

// Hold puts v in the inventory slot
func (g *Game) Hold(v token.Value) {
	g.Player.Held = v
}

// TakeHeld empties the inventory slot and returns what it held
func (g *Game) TakeHeld() token.Value {
	v := g.Player.Held
	g.Player.Held = token.Empty
	return v
}

// MovePlayer moves the player to c and recentres the view on it
func (g *Game) MovePlayer(c world.Cell) {
	g.Player.Cell = c
	g.ViewCenter = c
	g.Moves++
}
