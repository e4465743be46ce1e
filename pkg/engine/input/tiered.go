package input

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"worldofbits/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
	DeviceRemote
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement of the player, one cell at a time
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Pan moves the view without moving the player
	ActionPan

	// Recenter returns the view to the player
	ActionRecenter

	// Interact activates the cell at (DI, DJ) from the player
	ActionInteract

	// InteractHere activates the player's own cell
	ActionInteractHere

	// Meta / UI
	ActionHint
	ActionQuit
	ActionDump
	ActionScreenshot
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action

	// Dir is set for ActionPan
	Dir world.Direction

	// DI and DJ are cell offsets from the player, set for ActionInteract
	DI, DJ int
}

// Offset returns the cell the intent targets, relative to from
func (in Intent) Offset(from world.Cell) world.Cell {
	return from.Offset(in.DI, in.DJ)
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "KeyW", "arrow_up", "a 1 -1").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Each RawInput is treated as already debounced by the underlying libraries
// (Ebiten, terminal raw mode); the code is normalised here.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.Join(strings.Fields(raw.Code), " ")),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Interaction with the player's own cell
	"take":  ActionInteractHere,
	"t":     ActionInteractHere,
	"enter": ActionInteractHere,
	"space": ActionInteractHere,

	// View
	"center":   ActionRecenter,
	"centre":   ActionRecenter,
	"c":        ActionRecenter,
	"home":     ActionRecenter,
	"recenter": ActionRecenter,

	// Help / hint
	"?":    ActionHint,
	"help": ActionHint,
	"hint": ActionHint,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Developer tools
	"dump": ActionDump,
	"f9":   ActionDump,

	"screenshot": ActionScreenshot,
	"f12":        ActionScreenshot,
}

// panBindings maps codes to a pan direction. They are not rebindable.
var panBindings = map[string]world.Direction{
	"shift_arrow_up":    world.North,
	"shift_arrow_down":  world.South,
	"shift_arrow_left":  world.West,
	"shift_arrow_right": world.East,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Codes carrying arguments
// ("a DI DJ", "pan DIR") are parsed as commands.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if dir, ok := panBindings[ev.Code]; ok {
		return Intent{Action: ActionPan, Dir: dir}
	}
	if in, ok := ParseCommand(ev.Code); ok {
		return in
	}
	return Intent{Action: ActionNone}
}

// ParseCommand parses the argument-carrying commands:
//
//	a DI DJ    interact with the cell offset (DI, DJ) from the player
//	pan DIR    pan the view one cell towards DIR
func ParseCommand(line string) (Intent, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Intent{}, false
	}
	switch fields[0] {
	case "a", "act", "activate":
		if len(fields) != 3 {
			return Intent{}, false
		}
		di, err := strconv.Atoi(fields[1])
		if err != nil {
			return Intent{}, false
		}
		dj, err := strconv.Atoi(fields[2])
		if err != nil {
			return Intent{}, false
		}
		return Intent{Action: ActionInteract, DI: di, DJ: dj}, true
	case "pan", "p":
		if len(fields) != 2 {
			return Intent{}, false
		}
		dir, ok := world.ParseDirection(fields[1])
		if !ok {
			return Intent{}, false
		}
		return Intent{Action: ActionPan, Dir: dir}, true
	}
	return Intent{}, false
}

// Resolve runs a raw input through every layer
func Resolve(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// MoveDirection returns the direction of a movement action
func MoveDirection(a Action) (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveEast:
		return world.East, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	default:
		return world.North, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionPan:
		return "Pan"
	case ActionRecenter:
		return "Recenter"
	case ActionInteract:
		return "Interact"
	case ActionInteractHere:
		return "Take/Place Here"
	case ActionHint:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionDump:
		return "Dump Viewport"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between calls.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and the quit binding are reserved and never removed.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReserved(code) {
		bindings[code] = action
	}
}

func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "quit":
		return true
	}
	return false
}
