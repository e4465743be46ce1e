// Package ebiten is the graphical frontend. It implements renderer.Surface by
// keeping a snapshot of the drawn window, draws it every frame, and forwards
// clicks, drags and keys to the engine from a separate game loop goroutine.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"worldofbits/pkg/game/gameplay"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    900,
		windowHeight:   900,
		tileSize:       defaultTileSize,
		inputChan:      make(chan request, 16),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Run attaches to g, opens the window and blocks until the window closes or
// the player quits
func (e *EbitenRenderer) Run(g *gameplay.Engine) error {
	g.SetSurface(e)

	done := make(chan struct{})
	defer close(done)
	go e.gameLoop(g, done)

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("World of Bits")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameLoop applies input requests to the engine, one at a time
func (e *EbitenRenderer) gameLoop(g *gameplay.Engine, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case req := <-e.inputChan:
			e.apply(g, req)
		}
	}
}

// apply drives the engine entry point for one request
func (e *EbitenRenderer) apply(g *gameplay.Engine, req request) {
	switch req.kind {
	case requestActivate:
		g.OnCellActivated(req.cell)
	case requestViewport:
		g.OnViewportChanged(g.Mapper().CellCenter(req.cell))
	default:
		g.ProcessIntent(req.intent)
	}
	if g.Quit() {
		e.quitting.Store(true)
	}
}
