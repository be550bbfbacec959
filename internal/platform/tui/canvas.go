package tui

import (
	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// snakeRune fills the cells covered by the snake.
const snakeRune = '█'

// TerminalCanvas draws the game into a character Screen using the
// terminal geometry.
type TerminalCanvas struct {
	screen *core.Screen
	geo    grid.Geometry
}

// NewTerminalCanvas creates a canvas sized to fit the whole board.
func NewTerminalCanvas() *TerminalCanvas {
	w, h := grid.Terminal.WindowSize()
	return &TerminalCanvas{
		screen: core.NewScreen(w, h),
		geo:    grid.Terminal,
	}
}

// Screen returns the underlying buffer.
func (c *TerminalCanvas) Screen() *core.Screen {
	return c.screen
}

func (c *TerminalCanvas) Geometry() grid.Geometry {
	return c.geo
}

func (c *TerminalCanvas) Clear(bg core.Color) {
	c.screen.SetBackground(bg)
}

func (c *TerminalCanvas) FillCell(r core.Rect, col core.Color) {
	c.screen.DrawRect(r, snakeRune, col)
}

// StrokeRect draws a one-character frame; width is ignored on character
// screens.
func (c *TerminalCanvas) StrokeRect(r core.Rect, _ int, col core.Color) {
	c.screen.DrawBox(r, col)
}

// DrawTexture places each glyph by its column width. The column after a
// wide glyph holds a core.Continuation cell that RenderScreen skips.
func (c *TerminalCanvas) DrawTexture(t *assets.Texture, x, y int) {
	for i, row := range t.Glyphs {
		c.screen.DrawText(x, y+i, row, t.Color)
	}
}

func (c *TerminalCanvas) DrawText(text string, x, y, _ int, col core.Color) {
	c.screen.DrawText(x, y, text, col)
}
