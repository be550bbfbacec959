package core

// Color identifies a palette entry for a screen cell.
// The platform layer decides how each entry is displayed.
type Color uint8

// Palette entries. Field and Ink are the board's background and foreground;
// the remaining entries are named terminal colors usable by sprites.
const (
	ColorDefault Color = iota
	ColorField
	ColorInk
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"field":         ColorField,
	"ink":           ColorInk,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_red":    ColorBrightRed,
	"bright_green":  ColorBrightGreen,
	"bright_yellow": ColorBrightYellow,
	"orange":        ColorOrange,
}

// ParseColor returns the palette entry with the given name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// String returns the palette name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}
