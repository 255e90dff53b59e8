package constants

// Layout
const (
	// CellWidth is the number of terminal columns per grid cell (keeps cells roughly square)
	CellWidth = 2

	// HUDHeight is the number of rows above the play field
	HUDHeight = 2

	// HelpHeight is the number of rows below the play field
	HelpHeight = 2
)

// Glyphs
const (
	GlyphGrid      = '·'
	GlyphSnakeHead = '█'
	GlyphSnakeBody = '▓'
	GlyphFood      = '●'
)

// Text
const (
	TextPaused       = " PAUSED "
	TextGameOver     = " GAME OVER "
	TextRestartHint  = "press R to restart"
	TextTooSmall     = "terminal too small"
	TextHelpMovement = "arrows/hjkl: move  P: pause  M: mute"
	TextHelpControls = "R: restart  1: difficulty  Esc: quit"
)
