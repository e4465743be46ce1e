package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// getFace returns the shared bitmap face, creating it on first use
func (e *EbitenRenderer) getFace() *text.GoXFace {
	if e.face == nil {
		e.face = text.NewGoXFace(basicfont.Face7x13)
	}
	return e.face
}

// getTextWidth returns the width of a string in pixels
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getFace(), 0)
	return w
}

// labelScale returns how much tile labels are enlarged for the current tile size
func (e *EbitenRenderer) labelScale() float64 {
	s := float64(e.tileSize) / float64(defaultTileSize) * 1.5
	if s < 1 {
		s = 1
	}
	return s
}
