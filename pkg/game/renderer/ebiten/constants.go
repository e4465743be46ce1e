package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorGridLine        = color.RGBA{40, 40, 60, 255}    // Cell borders
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorPlayerBg        = color.RGBA{20, 70, 30, 255}    // Player cell background
	colorEmpty           = color.RGBA{70, 70, 90, 255}    // Empty cell out of reach
	colorReach           = color.RGBA{120, 150, 200, 255} // Empty cell within reach
	colorReachBg         = color.RGBA{30, 35, 60, 255}    // Reach background
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorWin             = color.RGBA{255, 220, 100, 255} // Gold
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark

	// Callout colors
	ColorCalloutInfo    = color.RGBA{200, 200, 255, 255}
	ColorCalloutSuccess = color.RGBA{100, 255, 150, 255}
	ColorCalloutDanger  = color.RGBA{255, 120, 120, 255}
	ColorCalloutWin     = color.RGBA{255, 220, 100, 255}
)

// Token colours by level: 2, 4, 8, 16 and above
var tokenColors = []color.RGBA{
	{100, 150, 255, 255},
	{0, 220, 220, 255},
	{255, 150, 255, 255},
	{255, 200, 100, 255},
}

// Token backgrounds by level, same order as tokenColors
var tokenBackgrounds = []color.RGBA{
	{30, 40, 80, 255},
	{20, 60, 60, 255},
	{70, 30, 70, 255},
	{80, 60, 20, 255},
}

// Icon constants
const (
	PlayerIcon = "@"
	IconEmpty  = "."
	IconReach  = "+"
)

// Tile size constraints
const (
	defaultTileSize = 40
	minTileSize     = 24
	maxTileSize     = 96
	tileSizeStep    = 8
)

// Layout constants, in pixels
const (
	mapMargin       = 20
	headerHeight    = 30
	messageLines    = 5
	lineHeight      = 18
	messageLifetime = 10000 // milliseconds
	calloutLifetime = 2500  // milliseconds
)

const (
	keyRepeatInitialDelay = 400 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 120 // Interval between repeat events (milliseconds)
)
