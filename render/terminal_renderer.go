package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// TerminalRenderer draws the game onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// Grid dimensions in cells
	gridWidth  int
	gridHeight int

	// Play field origin in terminal cells, recomputed on resize
	gameX int
	gameY int
}

// NewTerminalRenderer creates a renderer for a gridWidth x gridHeight field sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, gridWidth, gridHeight int) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, gridWidth: gridWidth, gridHeight: gridHeight}
	r.Resize()
	return r
}

// Resize re-reads the terminal size and re-centers the play field
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()

	r.gameX = max(0, (r.width-r.fieldWidth())/2)
	r.gameY = max(0, (r.height-r.layoutHeight())/2) + constants.HUDHeight
}

// fieldWidth is the play field width in terminal columns
func (r *TerminalRenderer) fieldWidth() int {
	return r.gridWidth * constants.CellWidth
}

// layoutHeight is the HUD, field and help height in terminal rows
func (r *TerminalRenderer) layoutHeight() int {
	return constants.HUDHeight + r.gridHeight + constants.HelpHeight
}

// TooSmall reports whether the terminal cannot show the whole layout
func (r *TerminalRenderer) TooSmall() bool {
	return r.width < r.fieldWidth() || r.height < r.layoutHeight()
}

// GameOrigin returns the terminal cell of grid cell (0,0)
func (r *TerminalRenderer) GameOrigin() (int, int) {
	return r.gameX, r.gameY
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	r.drawHUD(ctx, defaultStyle)
	r.drawGrid(ctx, defaultStyle)
	r.drawFood(ctx, defaultStyle)
	r.drawSnake(ctx, defaultStyle)
	r.drawHelp(defaultStyle)

	switch ctx.State.Phase() {
	case engine.PhasePaused:
		r.drawOverlay([]string{constants.TextPaused, "P to resume"}, RgbOverlayPause)
	case engine.PhaseGameOver:
		r.drawOverlay([]string{
			constants.TextGameOver,
			fmt.Sprintf("Score: %d", ctx.Snake.Score),
			fmt.Sprintf("Best (%s): %d", ctx.State.Difficulty(), ctx.State.HighScore(ctx.State.Difficulty())),
			constants.TextRestartHint,
		}, RgbOverlayOver)
	}

	if r.TooSmall() {
		r.drawTooSmall()
	}

	r.screen.Show()
}

// drawHUD draws score, best score, difficulty and mute state above the field
func (r *TerminalRenderer) drawHUD(ctx *engine.GameContext, defaultStyle tcell.Style) {
	y := r.gameY - constants.HUDHeight
	d := ctx.State.Difficulty()

	textStyle := defaultStyle.Foreground(RgbStatusText)
	x := r.drawText(r.gameX, y, fmt.Sprintf("Score: %d  Best: %d  ", ctx.Snake.Score, ctx.State.HighScore(d)), textStyle)

	badge := " " + strings.ToUpper(d.String()) + " "
	badgeStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(DifficultyColor(int(d)))
	x = r.drawText(x, y, badge, badgeStyle)

	if ctx.State.Muted() {
		r.drawText(x+2, y, "MUTED", defaultStyle.Foreground(RgbMutedText))
	}
}

// drawGrid draws a dot in each empty cell
func (r *TerminalRenderer) drawGrid(ctx *engine.GameContext, defaultStyle tcell.Style) {
	dotStyle := defaultStyle.Foreground(RgbGridDot)
	for y := 0; y < r.gridHeight; y++ {
		for x := 0; x < r.gridWidth; x++ {
			r.setCell(x, y, constants.GlyphGrid, ' ', dotStyle)
		}
	}
}

func (r *TerminalRenderer) drawFood(ctx *engine.GameContext, defaultStyle tcell.Style) {
	p := ctx.Food.Position
	r.setCell(p.X, p.Y, constants.GlyphFood, ' ', defaultStyle.Foreground(RgbFood))
}

// drawSnake draws body first so the head always wins its cell
func (r *TerminalRenderer) drawSnake(ctx *engine.GameContext, defaultStyle tcell.Style) {
	bodyColor, headColor := RgbSnakeBody, RgbSnakeHead
	if ctx.State.Phase() == engine.PhaseGameOver {
		bodyColor, headColor = RgbSnakeDead, RgbSnakeDead
	}

	positions := ctx.Snake.Positions
	bodyStyle := defaultStyle.Foreground(bodyColor)
	for i := len(positions) - 1; i > 0; i-- {
		r.setCell(positions[i].X, positions[i].Y, constants.GlyphSnakeBody, constants.GlyphSnakeBody, bodyStyle)
	}
	if len(positions) > 0 {
		head := positions[0]
		r.setCell(head.X, head.Y, constants.GlyphSnakeHead, constants.GlyphSnakeHead, defaultStyle.Foreground(headColor))
	}
}

// drawHelp draws the two key help lines below the field
func (r *TerminalRenderer) drawHelp(defaultStyle tcell.Style) {
	y := r.gameY + r.gridHeight
	helpStyle := defaultStyle.Foreground(RgbHelpText)
	r.drawText(r.gameX, y, constants.TextHelpMovement, helpStyle)
	r.drawText(r.gameX, y+1, constants.TextHelpControls, helpStyle)
}

// drawOverlay draws a centered box over the field
func (r *TerminalRenderer) drawOverlay(lines []string, accent tcell.Color) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	left := r.gameX + (r.fieldWidth()-boxW)/2
	top := r.gameY + (r.gridHeight-boxH)/2

	boxStyle := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbStatusText)
	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			r.put(x, y, ' ', boxStyle)
		}
	}

	for i, l := range lines {
		style := boxStyle
		if i == 0 {
			style = tcell.StyleDefault.Background(accent).Foreground(tcell.ColorBlack).Bold(true)
		}
		x := left + (boxW-len([]rune(l)))/2
		r.drawText(x, top+1+i, l, style)
	}
}

// drawTooSmall writes the notice on the last visible row
func (r *TerminalRenderer) drawTooSmall() {
	if r.height <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbWarning).Bold(true)
	text := fmt.Sprintf("%s (need %dx%d)", constants.TextTooSmall, r.fieldWidth(), r.layoutHeight())
	r.drawText(0, r.height-1, text, style)
}

// setCell fills both terminal columns of grid cell (gx, gy)
func (r *TerminalRenderer) setCell(gx, gy int, left, right rune, style tcell.Style) {
	x := r.gameX + gx*constants.CellWidth
	y := r.gameY + gy
	r.put(x, y, left, style)
	for i := 1; i < constants.CellWidth; i++ {
		r.put(x+i, y, right, style)
	}
}

// drawText writes s at (x, y), clipped, returning the column after the text
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.put(x, y, ch, style)
		x++
	}
	return x
}

// put writes one rune, dropping anything off screen
func (r *TerminalRenderer) put(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
