package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(assets.NewLoader(), game.Options{Seed: 1})
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestTerminalCanvasSize(t *testing.T) {
	c := NewTerminalCanvas()
	if c.Screen().Width() != 54 || c.Screen().Height() != 29 {
		t.Errorf("screen = %dx%d, expected 54x29", c.Screen().Width(), c.Screen().Height())
	}
}

func TestTerminalCanvasDrawsGame(t *testing.T) {
	g := newTestGame(t)
	c := NewTerminalCanvas()
	g.Draw(c)
	s := c.Screen()

	if !strings.HasPrefix(s.Row(0), " Jake the Snake") {
		t.Errorf("title row = %q", s.Row(0))
	}
	if s.Get(1, 1) != '┏' || s.Get(52, 27) != '┛' {
		t.Errorf("border corners = %q %q, expected ┏ ┛", s.Get(1, 1), s.Get(52, 27))
	}
	if got := strings.TrimSpace(s.Row(28)); got != "0" {
		t.Errorf("score row = %q, expected 0", got)
	}

	for _, cell := range g.Snake().Body() {
		x, y := grid.Terminal.ToScreen(cell)
		for dx := 0; dx < 2; dx++ {
			sc := s.GetCell(x+dx, y)
			if sc.Rune != snakeRune || sc.Color != core.ColorInk {
				t.Errorf("snake cell %v at (%d, %d) = %+v", cell, x+dx, y, sc)
			}
		}
	}

	fx, fy := grid.Terminal.ToScreen(g.Food().Position())
	tex := g.Food().Texture()
	if got := s.GetCell(fx, fy); got.Color != tex.Color {
		t.Errorf("food cell color = %v, expected %v", got.Color, tex.Color)
	}

	if got := s.GetCell(0, 14); got.Color != core.ColorField || got.Rune != ' ' {
		t.Errorf("margin cell = %+v, expected blank field", got)
	}
}

func TestTerminalCanvasRedrawClears(t *testing.T) {
	g := newTestGame(t)
	c := NewTerminalCanvas()
	g.Draw(c)
	tail := g.Snake().Body()[2]

	g.Update()
	g.Draw(c)
	if g.Snake().Contains(tail, false) {
		t.Skip("snake grew on the first tick")
	}

	x, y := grid.Terminal.ToScreen(tail)
	if got := c.Screen().Get(x, y); got == snakeRune {
		t.Errorf("old tail at (%d, %d) still drawn", x, y)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetBackground(core.ColorField)
	s.DrawText(0, 0, "ab", core.ColorInk)
	s.Set(5, 1, 'z')

	p := NewPalette(config.Default().Theme, core.ColorBrightRed)
	out := RenderScreen(s, p)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "z") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

func TestPalette(t *testing.T) {
	theme := config.Default().Theme
	p := NewPalette(theme, core.ColorBrightRed)

	if p.Hex(core.ColorField) != "#ADCC60" || p.Hex(core.ColorInk) != "#2B3318" {
		t.Errorf("theme colors = %s %s", p.Hex(core.ColorField), p.Hex(core.ColorInk))
	}
	tex := &assets.Texture{Name: "food", Color: core.ColorBrightRed, Fill: "#D94A3A"}
	if got := p.TextureFill(tex); got != "#D94A3A" {
		t.Errorf("TextureFill() = %s, expected sprite fill", got)
	}
	if p.Muted() == "" {
		t.Error("Muted() should not be empty")
	}

	theme.Food = "#112233"
	p = NewPalette(theme, core.ColorBrightRed)
	if got := p.Hex(core.ColorBrightRed); got != "#112233" {
		t.Errorf("Hex(sprite color) = %s, expected theme food", got)
	}
	if got := p.TextureFill(tex); got != "#112233" {
		t.Errorf("TextureFill() = %s, expected theme food", got)
	}
}

func TestTerminalCanvasWideGlyph(t *testing.T) {
	c := NewTerminalCanvas()
	c.Clear(core.ColorField)
	tex := &assets.Texture{Name: "bento", Glyphs: []string{"食"}, Color: core.ColorOrange}

	c.DrawTexture(tex, 4, 3)
	s := c.Screen()
	if s.Get(4, 3) != '食' || s.Get(5, 3) != core.Continuation {
		t.Errorf("cells = %q %q, expected wide rune and continuation", s.Get(4, 3), s.Get(5, 3))
	}
	if s.Get(6, 3) != ' ' {
		t.Errorf("cell after wide rune = %q, expected blank", s.Get(6, 3))
	}

	row := strings.Split(RenderScreen(s, NewPalette(config.Default().Theme, core.ColorOrange)), "\n")[3]
	if strings.ContainsRune(row, core.Continuation) {
		t.Error("rendered row contains a continuation cell")
	}
}
