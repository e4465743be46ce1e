package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^{}]*)\}`)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// markupColor returns the colour for a markup function
func markupColor(function string) color.Color {
	switch function {
	case "ITEM", "TOKEN":
		return colorItem
	case "ACTION":
		return colorAction
	case "DENIED":
		return colorDenied
	case "WIN":
		return colorWin
	case "SUBTLE", "CELL":
		return colorSubtle
	default:
		return colorText
	}
}

// parseMarkup splits a FUNC{operand} message into coloured segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}
		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]
		if content != "" {
			segments = append(segments, textSegment{text: content, color: markupColor(function)})
		}
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}
	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}
	return segments
}

// segmentsText joins the segments back into plain text
func segmentsText(segments []textSegment) string {
	s := ""
	for _, seg := range segments {
		s += seg.text
	}
	return s
}

// applyAlpha fades a colour towards transparent black
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// drawColoredText draws a single run of text with its top-left at x, y
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getFace(), op)
}

// drawColoredTextSegments draws segments left to right, fading them by alpha
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y float64, alpha float64) {
	currentX := x
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		e.drawColoredText(screen, seg.text, currentX, y, applyAlpha(seg.color, alpha))
		currentX += e.getTextWidth(seg.text)
	}
}

// drawScaledText draws str centred on cx, cy enlarged by scale
func (e *EbitenRenderer) drawScaledText(screen *ebiten.Image, str string, cx, cy, scale float64, col color.Color) {
	w, h := text.Measure(str, e.getFace(), 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w*scale/2, cy-h*scale/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getFace(), op)
}
