package gameplay

import (
	"worldofbits/pkg/game/renderer"
)

// movementHintLimit is how many moves keep the "You are here!" tooltip
const movementHintLimit = 3

// showYouAreHere points the player at their own cell
func (e *Engine) showYouAreHere() {
	e.surface.Notify(renderer.Notice{
		Kind: renderer.NoticeTooltip,
		Cell: e.game.Player.Cell,
		Text: e.catalog.T("YOU_ARE_HERE"),
	})
}

// showHelp lists the commands
func (e *Engine) showHelp() {
	e.logMessage(renderer.NoticeInfo, e.game.Player.Cell, "HELP")
}
