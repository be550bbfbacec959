package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// baseColors are the hex values of the named palette entries.
var baseColors = map[core.Color]string{
	core.ColorRed:          "#CC3333",
	core.ColorGreen:        "#33AA33",
	core.ColorYellow:       "#CCAA22",
	core.ColorBlue:         "#3355CC",
	core.ColorMagenta:      "#AA33AA",
	core.ColorCyan:         "#33AAAA",
	core.ColorWhite:        "#DDDDDD",
	core.ColorBrightRed:    "#E64545",
	core.ColorBrightGreen:  "#66DD66",
	core.ColorBrightYellow: "#EEDD44",
	core.ColorOrange:       "#EE8833",
}

// Palette maps core colors to hex values for one theme.
type Palette struct {
	colors map[core.Color]string
	food   string
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds the palette for a theme. When the theme sets a food
// color it replaces spriteColor, the palette entry of the food sprite.
func NewPalette(theme config.Theme, spriteColor core.Color) Palette {
	colors := make(map[core.Color]string, len(baseColors)+3)
	for c, hex := range baseColors {
		colors[c] = hex
	}
	colors[core.ColorDefault] = theme.Ink
	colors[core.ColorField] = theme.Field
	colors[core.ColorInk] = theme.Ink
	if theme.Food != "" {
		colors[spriteColor] = theme.Food
	}

	p := Palette{
		colors: colors,
		food:   theme.Food,
		styles: make(map[core.Color]lipgloss.Style, len(colors)),
	}
	bg := lipgloss.Color(theme.Field)
	for c, hex := range colors {
		p.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Background(bg)
	}
	return p
}

// Hex returns the hex value of a color.
func (p Palette) Hex(c core.Color) string {
	if hex, ok := p.colors[c]; ok {
		return hex
	}
	return p.colors[core.ColorDefault]
}

// TextureFill returns the fill used for a texture by vector renderers.
func (p Palette) TextureFill(t *assets.Texture) string {
	switch {
	case p.food != "":
		return p.food
	case t.Fill != "":
		return t.Fill
	default:
		return p.Hex(t.Color)
	}
}

// Muted returns the ink color blended halfway toward the field.
func (p Palette) Muted() lipgloss.Color {
	ink, err1 := colorful.Hex(p.Hex(core.ColorInk))
	field, err2 := colorful.Hex(p.Hex(core.ColorField))
	if err1 != nil || err2 != nil {
		return lipgloss.Color("241")
	}
	return lipgloss.Color(ink.BlendLab(field, 0.5).Clamped().Hex())
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != core.Continuation {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
