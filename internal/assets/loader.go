// Package assets loads sprite textures from embedded or on-disk files.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodSprite is the path of the built-in food sprite.
const FoodSprite = "graphics/food.yaml"

//go:embed graphics
var embedded embed.FS

// ErrNotFound is returned when no source contains the requested sprite.
var ErrNotFound = errors.New("assets: sprite not found")

// Embedded returns the file system with the built-in sprites.
func Embedded() fs.FS {
	return embedded
}

// spriteFile is the on-disk YAML layout of a sprite.
type spriteFile struct {
	Name   string   `yaml:"name"`
	Glyphs []string `yaml:"glyphs"`
	Color  string   `yaml:"color"`
	Fill   string   `yaml:"fill"`
}

// Loader reads sprites from a list of file systems, first match wins,
// and counts textures that have not been released yet.
type Loader struct {
	sources []fs.FS

	mu   sync.Mutex
	live int
}

// NewLoader creates a loader searching the given sources in order.
// With no sources it uses the embedded sprites.
func NewLoader(sources ...fs.FS) *Loader {
	if len(sources) == 0 {
		sources = []fs.FS{embedded}
	}
	return &Loader{sources: sources}
}

// Load reads and decodes the sprite at path.
func (l *Loader) Load(path string) (*Texture, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", path, err)
	}

	tex, err := sf.texture()
	if err != nil {
		return nil, fmt.Errorf("assets: invalid sprite %s: %w", path, err)
	}

	l.mu.Lock()
	l.live++
	l.mu.Unlock()

	tex.loader = l
	return tex, nil
}

// Live returns the number of loaded textures not yet released.
func (l *Loader) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live
}

func (l *Loader) release() {
	l.mu.Lock()
	l.live--
	l.mu.Unlock()
}

func (l *Loader) read(path string) ([]byte, error) {
	for _, src := range l.sources {
		data, err := fs.ReadFile(src, path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

func (sf spriteFile) texture() (*Texture, error) {
	if len(sf.Glyphs) == 0 {
		return nil, errors.New("no glyphs")
	}
	width := runewidth.StringWidth(sf.Glyphs[0])
	for i, row := range sf.Glyphs {
		if n := runewidth.StringWidth(row); n == 0 || n != width {
			return nil, fmt.Errorf("glyph row %d has width %d, expected %d", i, n, width)
		}
	}

	color := core.ColorDefault
	if sf.Color != "" {
		c, ok := core.ParseColor(sf.Color)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", sf.Color)
		}
		color = c
	}

	return &Texture{
		Name:   sf.Name,
		Glyphs: sf.Glyphs,
		Color:  color,
		Fill:   sf.Fill,
	}, nil
}
