// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/journal"
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/state"
	"worldofbits/pkg/game/store"
	"worldofbits/pkg/game/token"
)

// Outcome is the result of activating a cell
type Outcome int

const (
	// OutcomeOutOfRange: the cell is further than the interaction radius
	OutcomeOutOfRange Outcome = iota
	// OutcomeNothingToPlace: empty cell, empty inventory
	OutcomeNothingToPlace
	// OutcomePickedUp: the cell's token moved into the inventory
	OutcomePickedUp
	// OutcomePlaced: the held token moved into the empty cell
	OutcomePlaced
	// OutcomeCrafted: equal tokens merged into one of double value
	OutcomeCrafted
	// OutcomeMismatch: held and cell tokens differ
	OutcomeMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOutOfRange:
		return "out_of_range"
	case OutcomeNothingToPlace:
		return "nothing_to_place"
	case OutcomePickedUp:
		return "picked_up"
	case OutcomePlaced:
		return "placed"
	case OutcomeCrafted:
		return "crafted"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the outcome changed the store and inventory
func (o Outcome) Succeeded() bool {
	return o == OutcomePickedUp || o == OutcomePlaced || o == OutcomeCrafted
}

// Rules are the fixed interaction constants
type Rules struct {
	InteractRadius int
	TargetValue    token.Value
}

// DefaultRules returns the reference rules: radius 3, target 16
func DefaultRules() Rules {
	return Rules{InteractRadius: 3, TargetValue: 16}
}

// Result describes one activation attempt
type Result struct {
	Outcome Outcome
	Cell    world.Cell

	// Distance from the player to Cell, in cell units
	Distance float64

	// Value is the cell's value after the attempt; Held is the inventory after
	Value token.Value
	Held  token.Value

	// Before holds the values the attempt was validated against
	BeforeValue token.Value
	BeforeHeld  token.Value

	// Won is set when this attempt crafted a value at or above the target
	Won bool
}

// Activate applies one interaction to cell c. Every check happens before any
// mutation, so a rejected attempt leaves the store and inventory untouched.
// An out-of-range cell is never read from the store.
func Activate(g *state.Game, st *store.Store, rules Rules, c world.Cell) Result {
	r := Result{
		Cell:       c,
		Distance:   world.Distance(g.Player.Cell, c),
		BeforeHeld: g.Player.Held,
		Held:       g.Player.Held,
	}

	if !world.WithinRadius(g.Player.Cell, c, rules.InteractRadius) {
		r.Outcome = OutcomeOutOfRange
		return r
	}

	current := st.Get(c)
	held := g.Player.Held
	r.BeforeValue = current
	r.Value = current

	switch {
	case current.IsEmpty() && !held.IsEmpty():
		st.Set(c, held)
		g.TakeHeld()
		r.Outcome = OutcomePlaced

	case current.IsEmpty():
		r.Outcome = OutcomeNothingToPlace

	case held.IsEmpty():
		g.Hold(current)
		st.Set(c, token.Empty)
		r.Outcome = OutcomePickedUp

	case held == current:
		crafted := current.Double()
		st.Set(c, crafted)
		g.TakeHeld()
		g.Crafts++
		r.Outcome = OutcomeCrafted
		if crafted >= rules.TargetValue {
			r.Won = true
			g.Won = true
		}

	default:
		r.Outcome = OutcomeMismatch
	}

	if r.Outcome.Succeeded() {
		g.Interactions++
	}
	r.Value = st.Get(c)
	r.Held = g.Player.Held
	return r
}

// Notice renders the player-facing notice for r with translate
func (r Result) Notice(rules Rules, translate func(string, ...any) string) renderer.Notice {
	n := renderer.Notice{Kind: renderer.NoticeInfo, Cell: r.Cell}
	switch r.Outcome {
	case OutcomeOutOfRange:
		n.Kind = renderer.NoticeDenied
		n.Text = translate("OUT_OF_RANGE", r.Distance, rules.InteractRadius)
	case OutcomeNothingToPlace:
		n.Kind = renderer.NoticeDenied
		n.Text = translate("NOTHING_TO_PLACE")
	case OutcomeMismatch:
		n.Kind = renderer.NoticeDenied
		n.Text = translate("VALUES_MUST_MATCH", int(r.BeforeHeld), int(r.BeforeValue))
	case OutcomePickedUp:
		n.Text = translate("PICKED_UP", int(r.Held))
	case OutcomePlaced:
		n.Text = translate("PLACED", int(r.Value))
	case OutcomeCrafted:
		if r.Won {
			n.Kind = renderer.NoticeWin
			n.Text = translate("WIN", int(r.Value))
		} else {
			n.Text = translate("CRAFTED", int(r.Value))
		}
	}
	return n
}

// OnCellActivated runs one interaction on c and reports exactly one notice.
// On success the cell is redrawn and the status refreshed.
func (e *Engine) OnCellActivated(c world.Cell) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activateLocked(c)
}

func (e *Engine) activateLocked(c world.Cell) Outcome {
	r := Activate(e.game, e.store, e.rules, c)
	if r.Outcome.Succeeded() {
		e.view.Update(c)
		e.showStatusLocked()
	}
	e.notify(r.Notice(e.rules, e.catalog.T))
	e.record(journal.Entry{
		Kind:    "activate",
		Cell:    c,
		Outcome: r.Outcome.String(),
		Value:   int(r.Value),
	})
	return r.Outcome
}
