package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"worldofbits/pkg/game/renderer"
)

const viewportDumpFilename = "viewport.txt"

// cellSymbol returns the fixed-width text for one cell
func cellSymbol(v renderer.CellView) string {
	switch {
	case v.IsPlayer && v.Value.IsEmpty():
		return "  @ "
	case v.IsPlayer:
		return fmt.Sprintf("@%3s", v.Label())
	case v.Value.IsEmpty() && v.InReach:
		return "  , "
	case v.Value.IsEmpty():
		return "  . "
	default:
		return fmt.Sprintf("%4s", v.Label())
	}
}

// WriteViewport writes a human- and diff-readable dump of s to w: metadata,
// legend, the window grid north-up, and a list of non-empty cells.
func WriteViewport(w io.Writer, s Snapshot) error {
	var b strings.Builder

	b.WriteString("=== VIEWPORT DUMP ===\n\n")
	b.WriteString("--- Metadata ---\n")
	fmt.Fprintf(&b, "seed: %d\n", s.Seed)
	fmt.Fprintf(&b, "player_cell: %d,%d\n", s.Player.I, s.Player.J)
	fmt.Fprintf(&b, "view_center: %d,%d\n", s.ViewCenter.I, s.ViewCenter.J)
	fmt.Fprintf(&b, "radius: %d\n", s.Radius)
	fmt.Fprintf(&b, "interact_radius: %d\n", s.Reach)
	if s.Held.IsEmpty() {
		b.WriteString("held: nothing\n")
	} else {
		fmt.Fprintf(&b, "held: %d\n", s.Held)
	}
	fmt.Fprintf(&b, "won: %v\n\n", s.Won)

	b.WriteString("--- Legend ---\n")
	b.WriteString(". = empty  , = empty within reach  N = token value  @ = player\n\n")

	b.WriteString("--- Map (north up) ---\n")
	for _, i := range s.Rows() {
		for _, v := range s.Row(i) {
			b.WriteString(cellSymbol(v))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("--- Tokens (i,j: value) ---\n")
	n := 0
	for _, v := range s.Cells {
		if v.Value.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "%d,%d: %d\n", v.Cell.I, v.Cell.J, v.Value)
		n++
	}
	if n == 0 {
		b.WriteString("(none)\n")
	}

	if len(s.Messages) > 0 {
		b.WriteString("\n--- Messages ---\n")
		for _, msg := range s.Messages {
			b.WriteString(renderer.StripMarkup(msg))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DumpViewportToFile writes the dump to viewport.txt in dir and returns its
// absolute path
func DumpViewportToFile(dir string, s Snapshot) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, viewportDumpFilename))
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteViewport(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
