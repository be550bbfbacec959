package tui

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// SVGCanvas draws the game as an SVG document in the pixel geometry of
// the classic 900x900 window.
type SVGCanvas struct {
	geo     grid.Geometry
	palette Palette
	body    bytes.Buffer
	doc     *svg.SVG
}

// NewSVGCanvas creates an empty pixel canvas.
func NewSVGCanvas(p Palette) *SVGCanvas {
	c := &SVGCanvas{geo: grid.Pixels, palette: p}
	c.doc = svg.New(&c.body)
	return c
}

func (c *SVGCanvas) Geometry() grid.Geometry {
	return c.geo
}

func (c *SVGCanvas) Clear(bg core.Color) {
	c.body.Reset()
	w, h := c.geo.WindowSize()
	c.doc.Rect(0, 0, w, h, c.fill(c.palette.Hex(bg)))
}

// FillCell draws a rounded cell, a quarter as round as it is wide.
func (c *SVGCanvas) FillCell(r core.Rect, col core.Color) {
	c.doc.Roundrect(r.X, r.Y, r.W, r.H, r.W/4, r.H/4, c.fill(c.palette.Hex(col)))
}

// StrokeRect draws the outline inside r as four filled edges.
func (c *SVGCanvas) StrokeRect(r core.Rect, width int, col core.Color) {
	fill := c.fill(c.palette.Hex(col))
	c.doc.Rect(r.X, r.Y, r.W, width, fill)
	c.doc.Rect(r.X, r.Bottom()-width, r.W, width, fill)
	c.doc.Rect(r.X, r.Y+width, width, r.H-2*width, fill)
	c.doc.Rect(r.Right()-width, r.Y+width, width, r.H-2*width, fill)
}

// DrawTexture draws the sprite as a disc filling one cell, titled with
// the sprite name.
func (c *SVGCanvas) DrawTexture(t *assets.Texture, x, y int) {
	rad := c.geo.CellW / 2
	c.doc.Group(`class="food"`)
	c.doc.Title(t.Name)
	c.doc.Circle(x+rad, y+rad, rad, c.fill(c.palette.TextureFill(t)))
	c.doc.Gend()
}

func (c *SVGCanvas) DrawText(text string, x, y, size int, col core.Color) {
	c.doc.Text(x, y, text,
		`font-family="monospace"`,
		fmt.Sprintf(`font-size="%d"`, size),
		`dominant-baseline="hanging"`,
		c.fill(c.palette.Hex(col)))
}

// Bytes returns the complete SVG document.
func (c *SVGCanvas) Bytes() []byte {
	w, h := c.geo.WindowSize()
	var out bytes.Buffer
	doc := svg.New(&out)
	doc.Start(w, h)
	out.Write(c.body.Bytes())
	doc.End()
	return out.Bytes()
}

func (c *SVGCanvas) fill(hex string) string {
	return fmt.Sprintf(`fill="%s"`, hex)
}
