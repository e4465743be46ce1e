package gameplay

import (
	"log"
	"sync"

	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/config"
	"worldofbits/pkg/game/devtools"
	"worldofbits/pkg/game/generator"
	"worldofbits/pkg/game/journal"
	"worldofbits/pkg/game/locale"
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/state"
	"worldofbits/pkg/game/store"
	"worldofbits/pkg/game/token"
	"worldofbits/pkg/game/viewport"
)

// Options are the collaborators of an Engine. Zero values get defaults.
type Options struct {
	Surface renderer.Surface

	// Generator overrides the seeded generator from the config
	Generator generator.Generator

	Journal journal.Recorder
	Catalog *locale.Catalog

	// DumpDir is where viewport dumps and screenshots are written
	DumpDir string
}

// Engine owns one game session: its store, player and viewport. Every entry
// point takes the engine lock and runs to completion, so frontends may call
// it from any goroutine. Surfaces are called with the lock held and must not
// call back into the engine.
type Engine struct {
	mu sync.Mutex

	cfg     config.Config
	rules   Rules
	mapper  world.Mapper
	game    *state.Game
	store   *store.Store
	view    *viewport.Materializer
	surface renderer.Surface
	journal journal.Recorder
	catalog *locale.Catalog
	dumpDir string
}

// NewEngine builds a session from cfg. Nothing is drawn until Start.
func NewEngine(cfg config.Config, opts Options) *Engine {
	gen := opts.Generator
	if gen == nil {
		gen = cfg.Generator()
	}
	surface := opts.Surface
	if surface == nil {
		surface = renderer.Discard
	}
	rec := opts.Journal
	if rec == nil {
		rec = journal.Nop
	}
	cat := opts.Catalog
	if cat == nil {
		cat = locale.Default()
	}
	dumpDir := opts.DumpDir
	if dumpDir == "" {
		dumpDir = "."
	}

	mapper := cfg.Mapper()
	st := store.New(gen)
	start := mapper.ToCell(cfg.StartLatLng())

	e := &Engine{
		cfg: cfg,
		rules: Rules{
			InteractRadius: cfg.InteractRadius,
			TargetValue:    token.Value(cfg.TargetValue),
		},
		mapper:  mapper,
		game:    state.NewGame(start),
		store:   st,
		view:    viewport.New(mapper, cfg.GridRadius, st, surface),
		surface: surface,
		journal: rec,
		catalog: cat,
		dumpDir: dumpDir,
	}
	e.view.SetPlayer(start, e.rules.InteractRadius)
	return e
}

// Start draws the first window around the player and greets them
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.view.Render(e.game.ViewCenter)
	e.showStatusLocked()
	e.logMessage(renderer.NoticeInfo, e.game.Player.Cell, "WELCOME", e.cfg.TargetValue)
	e.showYouAreHere()
}

// SetSurface attaches a new drawing surface and redraws everything onto it
func (e *Engine) SetSurface(s renderer.Surface) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s == nil {
		s = renderer.Discard
	}
	e.surface = s
	e.view.SetSurface(s)
	e.view.Render(e.game.ViewCenter)
	e.showStatusLocked()
}

// Close releases the journal
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.journal.Close()
}

// Rules returns the interaction rules in force
func (e *Engine) Rules() Rules {
	return e.rules
}

// Mapper returns the coordinate mapper
func (e *Engine) Mapper() world.Mapper {
	return e.mapper
}

// Held returns the inventory value
func (e *Engine) Held() token.Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Player.Held
}

// Player returns the player's cell
func (e *Engine) Player() world.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Player.Cell
}

// ViewCenter returns the cell the view is centred on
func (e *Engine) ViewCenter() world.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.ViewCenter
}

// ValueAt returns the current value of c, generating it on first access
func (e *Engine) ValueAt(c world.Cell) token.Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Get(c)
}

// Won reports whether the target has been crafted this session
func (e *Engine) Won() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Won
}

// Quit reports whether the player asked to leave
func (e *Engine) Quit() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Quit
}

// Messages returns a copy of the message log, oldest first
func (e *Engine) Messages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.game.Messages...)
}

// Status returns the inventory summary
func (e *Engine) Status() renderer.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusLocked()
}

// Refresh redraws the current window and status
func (e *Engine) Refresh() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.view.Refresh()
	e.showStatusLocked()
}

// Snapshot copies the visible window for developer tools
func (e *Engine) Snapshot() devtools.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() devtools.Snapshot {
	center := e.game.ViewCenter
	s := devtools.Snapshot{
		Seed:       e.cfg.Seed,
		Player:     e.game.Player.Cell,
		ViewCenter: center,
		Radius:     e.view.Radius,
		Reach:      e.rules.InteractRadius,
		Held:       e.game.Player.Held,
		Won:        e.game.Won,
		Messages:   append([]string(nil), e.game.Messages...),
	}
	for _, c := range world.VisibleCells(center, e.view.Radius) {
		s.Cells = append(s.Cells, e.view.View(c))
	}
	return s
}

func (e *Engine) statusLocked() renderer.Status {
	s := renderer.Status{
		Held:       e.game.Player.Held,
		Player:     e.game.Player.Cell,
		ViewCenter: e.game.ViewCenter,
		Won:        e.game.Won,
	}
	if s.Held.IsEmpty() {
		s.Text = e.catalog.T("HOLDING_NOTHING")
	} else {
		s.Text = e.catalog.T("HOLDING", int(s.Held))
	}
	return s
}

func (e *Engine) showStatusLocked() {
	e.surface.ShowStatus(e.statusLocked())
}

// logMessage translates key, adds it to the message log and notifies the surface
func (e *Engine) logMessage(kind renderer.NoticeKind, c world.Cell, key string, args ...any) {
	e.notify(renderer.Notice{Kind: kind, Cell: c, Text: e.catalog.T(key, args...)})
}

func (e *Engine) notify(n renderer.Notice) {
	e.game.AddMessage(n.Text)
	e.surface.Notify(n)
}

func (e *Engine) record(entry journal.Entry) {
	entry.Held = int(e.game.Player.Held)
	if err := e.journal.Record(entry); err != nil {
		log.Printf("journal: %v", err)
	}
}
