package ebiten

import (
	"image/color"
	"math"
	"time"
)

// pulse returns a value oscillating between lo and hi over a 2 second period
func pulse(now time.Time, lo, hi float64) float64 {
	const period = 2000.0
	phase := float64(now.UnixMilli()%int64(period)) / period
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*v
}

// getPulsingWinColor returns the win marker colour for the current frame
func (e *EbitenRenderer) getPulsingWinColor() color.Color {
	return scaleColor(colorWin, pulse(time.Now(), 0.5, 1.0))
}

// scaleColor multiplies the RGB channels of c by brightness
func scaleColor(c color.RGBA, brightness float64) color.RGBA {
	return color.RGBA{
		uint8(float64(c.R) * brightness),
		uint8(float64(c.G) * brightness),
		uint8(float64(c.B) * brightness),
		c.A,
	}
}
