package ebiten

import (
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/token"
)

// getCellRenderOptions picks the icon and colours for one visible cell
func getCellRenderOptions(v renderer.CellView) CellRenderOptions {
	switch {
	case v.IsPlayer && v.Value.IsEmpty():
		return CellRenderOptions{Icon: PlayerIcon, Color: colorPlayer, HasBackground: true, BackgroundColor: colorPlayerBg}
	case v.IsPlayer:
		return CellRenderOptions{
			Icon:            PlayerIcon + v.Label(),
			Color:           colorPlayer,
			HasBackground:   true,
			BackgroundColor: colorPlayerBg,
		}
	case !v.Value.IsEmpty():
		idx := tokenIndex(v.Value)
		return CellRenderOptions{
			Icon:            v.Label(),
			Color:           tokenColors[idx],
			HasBackground:   true,
			BackgroundColor: tokenBackgrounds[idx],
			Outline:         v.InReach,
		}
	case v.InReach:
		return CellRenderOptions{Icon: IconReach, Color: colorReach, HasBackground: true, BackgroundColor: colorReachBg}
	default:
		return CellRenderOptions{Icon: IconEmpty, Color: colorEmpty}
	}
}

// tokenIndex maps a token to its palette slot
func tokenIndex(v token.Value) int {
	idx := v.Level() - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tokenColors) {
		idx = len(tokenColors) - 1
	}
	return idx
}
