package grid

import "github.com/vovakirdan/tui-snake/internal/core"

// Pixel geometry of the classic window: 30px cells and a 75px margin,
// giving a 900x900 window around a 750x750 field.
const (
	CellSize = 30
	Offset   = 75
)

// Geometry maps grid cells to screen coordinates for one render target.
type Geometry struct {
	CellW, CellH     int // Size of one cell in screen units
	OffsetX, OffsetY int // Screen position of cell (0, 0)
	BorderPad        int // Gap between the field and its border
	BorderWidth      int
	TitleY           int // Baseline row of the title text
	ScoreGap         int // Distance from the field bottom to the score text
	TextSize         int
}

// Pixels is the geometry of the classic graphical window.
var Pixels = Geometry{
	CellW:       CellSize,
	CellH:       CellSize,
	OffsetX:     Offset,
	OffsetY:     Offset,
	BorderPad:   5,
	BorderWidth: 5,
	TitleY:      20,
	ScoreGap:    13,
	TextSize:    40,
}

// Terminal is the geometry used for character screens. A cell is two
// columns wide so the field looks square in most terminal fonts.
var Terminal = Geometry{
	CellW:       2,
	CellH:       1,
	OffsetX:     2,
	OffsetY:     2,
	BorderPad:   1,
	BorderWidth: 1,
	TitleY:      0,
	ScoreGap:    1,
	TextSize:    1,
}

// ToScreen returns the top-left screen coordinate of a cell.
func (g Geometry) ToScreen(c Cell) (x, y int) {
	return g.OffsetX + c.X*g.CellW, g.OffsetY + c.Y*g.CellH
}

// CellRect returns the screen rectangle covered by a cell.
func (g Geometry) CellRect(c Cell) core.Rect {
	x, y := g.ToScreen(c)
	return core.NewRect(x, y, g.CellW, g.CellH)
}

// FieldRect returns the screen rectangle covered by the whole field.
func (g Geometry) FieldRect() core.Rect {
	return core.NewRect(g.OffsetX, g.OffsetY, g.CellW*CellCount, g.CellH*CellCount)
}

// BorderRect returns the outer rectangle of the frame around the field.
func (g Geometry) BorderRect() core.Rect {
	return g.FieldRect().Inflate(g.BorderPad)
}

// TitlePos returns where the title text starts.
func (g Geometry) TitlePos() (x, y int) {
	return g.OffsetX - g.BorderPad, g.TitleY
}

// ScorePos returns where the score text starts.
func (g Geometry) ScorePos() (x, y int) {
	return g.OffsetX - g.BorderPad, g.FieldRect().Bottom() + g.ScoreGap
}

// WindowSize returns the screen size needed to show the field, its
// margins and the title and score lines.
func (g Geometry) WindowSize() (w, h int) {
	field := g.FieldRect()
	_, scoreY := g.ScorePos()
	h = field.Bottom() + g.OffsetY
	if need := scoreY + g.TextSize; need > h {
		h = need
	}
	return field.Right() + g.OffsetX, h
}
