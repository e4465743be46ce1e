package gameplay

import (
	"time"

	engineinput "worldofbits/pkg/engine/input"
	"worldofbits/pkg/game/devtools"
	"worldofbits/pkg/game/renderer"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func (e *Engine) ProcessIntent(intent engineinput.Intent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if dir, ok := engineinput.MoveDirection(intent.Action); ok {
		e.moveLocked(dir)
		return
	}

	player := e.game.Player.Cell
	switch intent.Action {
	case engineinput.ActionNone:
		e.logMessage(renderer.NoticeDenied, player, "UNKNOWN_COMMAND")

	case engineinput.ActionInteract:
		e.activateLocked(intent.Offset(player))

	case engineinput.ActionInteractHere:
		e.activateLocked(player)

	case engineinput.ActionPan:
		e.panLocked(intent.Dir)

	case engineinput.ActionRecenter:
		e.recenterLocked()

	case engineinput.ActionHint:
		e.showHelp()

	case engineinput.ActionQuit:
		e.game.Quit = true
		e.logMessage(renderer.NoticeInfo, player, "GOODBYE")

	case engineinput.ActionDump:
		path, err := devtools.DumpViewportToFile(e.dumpDir, e.snapshotLocked())
		if err != nil {
			e.logMessage(renderer.NoticeDenied, player, "DUMP_FAILED", err)
		} else {
			e.logMessage(renderer.NoticeInfo, player, "DUMPED", path)
		}

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(e.dumpDir, e.snapshotLocked(), time.Now())
		if err != nil {
			e.logMessage(renderer.NoticeDenied, player, "SCREENSHOT_FAILED", err)
		} else {
			e.logMessage(renderer.NoticeInfo, player, "SCREENSHOT", path)
		}
	}
}
