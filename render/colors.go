package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGridDot    = tcell.NewRGBColor(60, 62, 80)    // Dim grid
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbSnakeBody  = tcell.NewRGBColor(0, 160, 0)     // Normal green
	RgbSnakeDead  = tcell.NewRGBColor(180, 50, 50)   // Dark red after a crash
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelpText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbMutedText  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbWarning    = tcell.NewRGBColor(255, 255, 0)   // Bright yellow

	// Overlay box
	RgbOverlayBg    = tcell.NewRGBColor(0, 0, 0)
	RgbOverlayPause = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbOverlayOver  = tcell.NewRGBColor(255, 80, 80)
)

// Difficulty badge backgrounds, indexed by game.Difficulty
var difficultyBg = [...]tcell.Color{
	tcell.NewRGBColor(144, 238, 144), // Light grass green
	tcell.NewRGBColor(255, 192, 203), // Pink
	tcell.NewRGBColor(200, 50, 50),   // Red
}

// DifficultyColor returns the badge color for a difficulty index
func DifficultyColor(index int) tcell.Color {
	if index < 0 || index >= len(difficultyBg) {
		return RgbHelpText
	}
	return difficultyBg[index]
}
