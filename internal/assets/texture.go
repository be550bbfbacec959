package assets

import (
	"errors"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrReleased is returned when a texture is released a second time.
var ErrReleased = errors.New("assets: texture already released")

// Texture is a loaded sprite. It belongs to whoever loaded it and must be
// released exactly once.
type Texture struct {
	Name   string
	Glyphs []string   // Rows of runes for character screens
	Color  core.Color // Palette color for character screens
	Fill   string     // CSS color for vector renderers

	loader   *Loader
	released bool
}

// Width returns the sprite width in terminal columns.
func (t *Texture) Width() int {
	w := 0
	for _, row := range t.Glyphs {
		if n := runewidth.StringWidth(row); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of glyph rows.
func (t *Texture) Height() int {
	return len(t.Glyphs)
}

// Released reports whether Release has been called.
func (t *Texture) Released() bool {
	return t.released
}

// Release returns the texture to its loader.
func (t *Texture) Release() error {
	if t.released {
		return ErrReleased
	}
	t.released = true
	if t.loader != nil {
		t.loader.release()
	}
	return nil
}
