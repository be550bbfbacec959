package game

import (
	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Canvas is a render target. All coordinates are in the canvas's own
// screen units, derived from the Geometry it reports.
type Canvas interface {
	Geometry() grid.Geometry
	Clear(bg core.Color)
	FillCell(r core.Rect, c core.Color)
	StrokeRect(r core.Rect, width int, c core.Color)
	DrawTexture(t *assets.Texture, x, y int)
	DrawText(text string, x, y, size int, c core.Color)
}
