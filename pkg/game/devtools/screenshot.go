package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"worldofbits/pkg/game/renderer"
)

// SaveScreenshotHTML saves the current window as an HTML file in dir and
// returns its path
func SaveScreenshotHTML(dir string, s Snapshot, at time.Time) (string, error) {
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", at.Format("20060102-150405")))

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>World of Bits - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .player { color: #00ff00; font-weight: bold; }
        .empty { color: #555; }
        .reach { color: #888; }
        .token { color: #bb86fc; font-weight: bold; }
        .inventory { margin-top: 20px; color: #888; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">View (%d:%d), player (%d:%d)</div>`+"\n",
		s.ViewCenter.I, s.ViewCenter.J, s.Player.I, s.Player.J)

	b.WriteString(`    <div class="map-container">` + "\n")
	for _, i := range s.Rows() {
		b.WriteString(`        <div class="map-row">`)
		for _, v := range s.Row(i) {
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, cellClass(v), html.EscapeString(cellSymbol(v)))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(`    <div class="inventory">Holding: `)
	if s.Held.IsEmpty() {
		b.WriteString(`<span style="color:#666">nothing</span>`)
	} else {
		fmt.Fprintf(&b, `<span class="token">%d</span>`, s.Held)
	}
	b.WriteString("</div>\n")

	if len(s.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range s.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(renderer.StripMarkup(msg)))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString(`</body>
</html>
`)

	if err := os.WriteFile(filename, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// cellClass returns the CSS class for a cell
func cellClass(v renderer.CellView) string {
	switch {
	case v.IsPlayer:
		return "player"
	case !v.Value.IsEmpty():
		return "token"
	case v.InReach:
		return "reach"
	default:
		return "empty"
	}
}
