// Package tui is the terminal frontend: it keeps the last drawn window as a
// renderer.Surface and prints it as a north-up text grid between commands.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"worldofbits/pkg/engine/input"
	"worldofbits/pkg/engine/terminal"
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/gameplay"
	"worldofbits/pkg/game/renderer"
	"worldofbits/pkg/game/token"
)

// Icon constants
const (
	PlayerIcon    = "@"
	IconEmpty     = "·"
	IconReach     = "∙"
	IconUndrawn   = " "
	cellWidth     = 4
	sideLabelSize = 10
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorCell        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorReach       color.Style
	colorWin         color.Style
	colorTokens      []color.Style

	mu      sync.Mutex
	cells   map[world.Cell]renderer.CellView
	center  world.Cell
	radius  int
	status  renderer.Status
	tooltip string
}

// New creates a new TUI renderer writing to out (stdout if nil)
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	t := &TUIRenderer{out: out, cells: make(map[world.Cell]renderer.CellView)}
	t.Init()
	return t
}

// Init initializes the colours
func (t *TUIRenderer) Init() {
	t.colorCell = color.Style{color.FgGray}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorReach = color.Style{color.FgCyan}
	t.colorWin = color.Style{color.FgYellow, color.OpBold}

	// Token colours by level: 2, 4, 8, 16 and above
	t.colorTokens = []color.Style{
		{color.FgBlue},
		{color.FgCyan, color.OpBold},
		{color.FgMagenta, color.OpBold},
		{color.FgYellow, color.OpBold},
	}
}

// Clear implements renderer.Surface
func (t *TUIRenderer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cells = make(map[world.Cell]renderer.CellView)
	t.radius = 0
}

// DrawCell implements renderer.Surface
func (t *TUIRenderer) DrawCell(v renderer.CellView) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cells[v.Cell] = v
	t.trackWindow()
}

// UpdateCell implements renderer.Surface
func (t *TUIRenderer) UpdateCell(v renderer.CellView) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.cells[v.Cell]; ok {
		t.cells[v.Cell] = v
	}
}

// ShowStatus implements renderer.Surface
func (t *TUIRenderer) ShowStatus(s renderer.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
	t.center = s.ViewCenter
}

// Notify implements renderer.Surface. The message log is printed from the
// engine; only the tooltip shown beside the player is kept here.
func (t *TUIRenderer) Notify(n renderer.Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n.Kind == renderer.NoticeTooltip {
		t.tooltip = n.Text
	}
}

// trackWindow derives the window radius from the drawn cells; cells arrive
// as a full square
func (t *TUIRenderer) trackWindow() {
	n := len(t.cells)
	side := 1
	for side*side < n {
		side++
	}
	t.radius = (side - 1) / 2
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleItem, renderer.StyleToken:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleWin:
		return t.colorWin.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleReach:
		return t.colorReach.Sprint(text)
	default:
		return text
	}
}

// FormatText expands markup in a message
func (t *TUIRenderer) FormatText(msg string) string {
	return renderer.ExpandMarkup(msg, t.StyleText)
}

// tokenStyle returns the colour for a token value
func (t *TUIRenderer) tokenStyle(v token.Value) color.Style {
	idx := v.Level() - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.colorTokens) {
		idx = len(t.colorTokens) - 1
	}
	return t.colorTokens[idx]
}

// renderCell returns the fixed-width text for one cell
func (t *TUIRenderer) renderCell(v renderer.CellView, ok bool) string {
	pad := func(s string) string {
		w := len([]rune(s))
		if w >= cellWidth {
			return s
		}
		left := (cellWidth - w) / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-w-left)
	}
	switch {
	case !ok:
		return pad(IconUndrawn)
	case v.IsPlayer && v.Value.IsEmpty():
		return t.colorPlayer.Sprint(pad(PlayerIcon))
	case v.IsPlayer:
		return t.colorPlayer.Sprint(pad(PlayerIcon + v.Label()))
	case !v.Value.IsEmpty():
		return t.tokenStyle(v.Value).Sprint(pad(v.Label()))
	case v.InReach:
		return t.colorReach.Sprint(pad(IconReach))
	default:
		return t.colorCell.Sprint(pad(IconEmpty))
	}
}

// RenderFrame writes a complete frame: map, status and messages
func (t *TUIRenderer) RenderFrame(w io.Writer, messages []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", t.colorAction.Sprintf("World of Bits  view %v  player %v", t.center, t.status.Player))
	t.printMap(&b)
	t.printStatusBar(&b)
	t.printPossibleActions(&b)
	t.printMessagesPane(&b, messages)
	b.WriteString("\n> ")
	io.WriteString(w, b.String())
}

// printMap renders the window north-up with direction labels around it
func (t *TUIRenderer) printMap(b *strings.Builder) {
	termWidth, _ := terminal.GetSize()
	side := 2*t.radius + 1
	mapWidth := side * cellWidth
	centerIndent := (termWidth - mapWidth - 2*sideLabelSize) / 2
	if centerIndent < 0 {
		centerIndent = 0
	}
	indent := strings.Repeat(" ", centerIndent+sideLabelSize)

	label := func(txt string, width int) string {
		s := t.FormatText(txt)
		pad := width - len([]rune(color.ClearCode(s)))
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + s
	}

	b.WriteString(label("ACTION{north}", centerIndent+sideLabelSize+(mapWidth+5)/2))
	b.WriteString("\n\n")

	reach := mapset.New[world.Cell]()
	for c, v := range t.cells {
		if v.InReach {
			reach.Put(c)
		}
	}

	for di := t.radius; di >= -t.radius; di-- {
		i := t.center.I + di
		if di == 0 {
			b.WriteString(label("ACTION{west} ", centerIndent+sideLabelSize))
		} else {
			b.WriteString(indent)
		}
		for dj := -t.radius; dj <= t.radius; dj++ {
			c := world.Cell{I: i, J: t.center.J + dj}
			v, ok := t.cells[c]
			b.WriteString(t.renderCell(v, ok))
		}
		if di == 0 {
			b.WriteString(t.FormatText(" ACTION{east}"))
		}
		if _, ok := t.cells[t.status.Player]; ok && i == t.status.Player.I && t.tooltip != "" {
			b.WriteString("  " + t.colorSubtle.Sprint(renderer.StripMarkup(t.tooltip)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(label("ACTION{south}", centerIndent+sideLabelSize+(mapWidth+5)/2))
	b.WriteString("\n")
	if reach.Size() > 0 {
		b.WriteString(t.colorSubtle.Sprintf("%d cells within reach\n", reach.Size()))
	}
}

// printStatusBar renders the inventory status bar
func (t *TUIRenderer) printStatusBar(b *strings.Builder) {
	b.WriteString("\n")
	text := t.status.Text
	if text == "" {
		text = "Holding: nothing"
	}
	b.WriteString(t.FormatText(text))
	if t.status.Won {
		b.WriteString("  " + t.colorWin.Sprint("★"))
	}
	b.WriteString("\n")
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions(b *strings.Builder) {
	bullets := []string{
		"ACTION{take}: \tpick up, place or craft here",
		"ACTION{a} DI DJ: \tinteract with a nearby cell",
		"ACTION{pan} DIR: \tlook around, ACTION{center} to return",
		"ACTION{?}: \thelp",
	}
	for _, txt := range bullets {
		b.WriteString("- " + t.FormatText(txt) + "\n")
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(b *strings.Builder, messages []string) {
	width, _ := terminal.GetSize()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	right := width - sideLen - len(label)
	if right < 1 {
		right = 1
	}

	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", right)) + "\n")
	if len(messages) == 0 {
		b.WriteString(t.colorSubtle.Sprint("  (no messages)") + "\n")
	} else {
		for _, msg := range messages {
			fmt.Fprintf(b, "  %s\n", t.FormatText(msg))
		}
	}
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)) + "\n")
}

// Run attaches to e and loops reading commands until the player quits or
// input ends
func (t *TUIRenderer) Run(e *gameplay.Engine, in *input.Reader) error {
	e.SetSurface(t)
	for !e.Quit() {
		terminal.Clear(t.out)
		t.RenderFrame(t.out, e.Messages())

		code, err := in.ReadCommand()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		e.ProcessIntent(input.Resolve(input.RawInput{
			Device:    input.DeviceTerminal,
			Code:      code,
			Timestamp: time.Now(),
		}))
	}
	msgs := e.Messages()
	if len(msgs) > 0 {
		fmt.Fprintln(t.out, t.FormatText(msgs[len(msgs)-1]))
	}
	return nil
}
