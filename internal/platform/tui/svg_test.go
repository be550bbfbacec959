package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

func TestSVGCanvasDrawsGame(t *testing.T) {
	g := newTestGame(t)
	c := NewSVGCanvas(NewPalette(config.Default().Theme, core.ColorBrightRed))
	g.Draw(c)
	out := string(c.Bytes())

	checks := []string{
		`<svg width="900" height="900"`,
		`<rect x="0" y="0" width="900" height="900" fill="#ADCC60"`,
		// border edges: top, bottom, left, right
		`<rect x="70" y="70" width="760" height="5" fill="#2B3318"`,
		`<rect x="70" y="825" width="760" height="5" fill="#2B3318"`,
		`<rect x="70" y="75" width="5" height="750" fill="#2B3318"`,
		`<rect x="825" y="75" width="5" height="750" fill="#2B3318"`,
		`<text x="70" y="20" font-family="monospace" font-size="40"`,
		`>Jake the Snake</text>`,
		`<text x="70" y="838"`,
		`fill="#D94A3A"`,
		"</svg>",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	for _, cell := range g.Snake().Body() {
		x, y := grid.Pixels.ToScreen(cell)
		want := fmt.Sprintf(`<rect x="%d" y="%d" width="30" height="30" rx="7" ry="7"`, x, y)
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing snake cell %v", cell)
		}
	}

	fx, fy := grid.Pixels.ToScreen(g.Food().Position())
	if want := fmt.Sprintf(`<circle cx="%d" cy="%d" r="15"`, fx+15, fy+15); !strings.Contains(out, want) {
		t.Errorf("SVG missing food disc %q", want)
	}
	if n := strings.Count(out, "<circle"); n != 1 {
		t.Errorf("SVG has %d food circles, expected 1", n)
	}
}

func TestSVGCanvasClearResets(t *testing.T) {
	c := NewSVGCanvas(NewPalette(config.Default().Theme, core.ColorBrightRed))
	c.DrawText("old", 0, 0, 10, core.ColorInk)
	c.Clear(core.ColorField)

	if strings.Contains(string(c.Bytes()), "old") {
		t.Error("Clear should drop earlier drawing")
	}
}

func TestSVGCanvasEscapesText(t *testing.T) {
	c := NewSVGCanvas(NewPalette(config.Default().Theme, core.ColorBrightRed))
	c.DrawText("a<b&c", 0, 0, 10, core.ColorInk)

	if !strings.Contains(string(c.Bytes()), "a&lt;b&amp;c") {
		t.Errorf("text not escaped: %s", c.Bytes())
	}
}

func TestSaveScreenshot(t *testing.T) {
	g := newTestGame(t)
	dir := filepath.Join(t.TempDir(), "shots")
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	path, err := SaveScreenshot(g, NewPalette(config.Default().Theme, core.ColorBrightRed), dir, now)
	if err != nil {
		t.Fatalf("SaveScreenshot() failed: %v", err)
	}
	if want := filepath.Join(dir, "snake_20240501_123000.000.svg"); path != want {
		t.Errorf("path = %s, expected %s", path, want)
	}

	svg, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(svg), "<svg width=\"900\"") {
		t.Errorf("svg file unreadable or invalid: %v", err)
	}

	text, err := os.ReadFile(strings.TrimSuffix(path, ".svg") + ".txt")
	if err != nil {
		t.Fatalf("text dump missing: %v", err)
	}
	if !strings.Contains(string(text), "Jake the Snake") || !strings.Contains(string(text), "Snake len: 3") {
		t.Errorf("unexpected text dump:\n%s", text)
	}
}

func TestSaveScreenshotWideSprite(t *testing.T) {
	loader := assets.NewLoader(fstest.MapFS{
		"graphics/wide.yaml": {Data: []byte("name: bento\nglyphs: [\"食\"]\ncolor: orange\n")},
	})
	g, err := game.New(loader, game.Options{FoodSprite: "graphics/wide.yaml", Seed: 1})
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	t.Cleanup(func() { g.Close() })

	path, err := SaveScreenshot(g, NewPalette(config.Default().Theme, core.ColorOrange), t.TempDir(), time.Now())
	if err != nil {
		t.Fatalf("SaveScreenshot() failed: %v", err)
	}
	text, err := os.ReadFile(strings.TrimSuffix(path, ".svg") + ".txt")
	if err != nil {
		t.Fatalf("text dump missing: %v", err)
	}

	if strings.ContainsRune(string(text), 0) {
		t.Error("text dump contains NUL bytes")
	}
	if !strings.ContainsRune(string(text), '食') {
		t.Error("text dump is missing the food glyph")
	}
	w, h := grid.Terminal.WindowSize()
	rows := strings.Split(string(text), "\n")[:h]
	for i, row := range rows {
		if n := runewidth.StringWidth(row); n != w {
			t.Errorf("row %d is %d columns wide, expected %d", i, n, w)
		}
	}
}
