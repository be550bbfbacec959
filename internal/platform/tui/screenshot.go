package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// SaveScreenshot writes the current frame of g to dir twice: as an SVG in
// window pixels and as a text dump followed by the game state. It returns
// the path of the SVG file.
func SaveScreenshot(g *game.Game, p Palette, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}
	base := filepath.Join(dir, "snake_"+now.Format("20060102_150405.000"))

	svg := NewSVGCanvas(p)
	g.Draw(svg)
	svgPath := base + ".svg"
	if err := os.WriteFile(svgPath, svg.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}

	text := NewTerminalCanvas()
	g.Draw(text)
	dump := text.Screen().String() + "\n\n" + g.Snapshot().String()
	if err := os.WriteFile(base+".txt", []byte(dump), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return svgPath, nil
}
