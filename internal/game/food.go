package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// TextureLoader loads sprite textures by path.
type TextureLoader interface {
	Load(path string) (*assets.Texture, error)
}

// Food is a single cell the snake can eat. It owns its texture.
type Food struct {
	position grid.Cell
	texture  *assets.Texture
	rng      *rand.Rand
}

// NewFood loads the food texture and places the food off the given body.
func NewFood(loader TextureLoader, sprite string, rng *rand.Rand, body []grid.Cell) (*Food, error) {
	tex, err := loader.Load(sprite)
	if err != nil {
		return nil, fmt.Errorf("game: cannot load food sprite: %w", err)
	}

	f := &Food{
		texture: tex,
		rng:     rng,
	}
	f.Spawn(body)
	return f, nil
}

// Spawn moves the food to a random cell not covered by body.
// Candidates on the body are rejected and drawn again, which terminates
// as long as the body leaves at least one cell free.
func (f *Food) Spawn(body []grid.Cell) {
	pos := f.randomCell()
	for containsCell(body, pos) {
		pos = f.randomCell()
	}
	f.position = pos
}

func (f *Food) randomCell() grid.Cell {
	return grid.Cell{
		X: f.rng.Intn(grid.CellCount),
		Y: f.rng.Intn(grid.CellCount),
	}
}

// Position returns the cell the food occupies.
func (f *Food) Position() grid.Cell {
	return f.position
}

// Texture returns the food's sprite, or nil once the food is closed.
func (f *Food) Texture() *assets.Texture {
	return f.texture
}

// Draw renders the food sprite at its cell.
func (f *Food) Draw(c Canvas) {
	if f.texture == nil {
		return
	}
	x, y := c.Geometry().ToScreen(f.position)
	c.DrawTexture(f.texture, x, y)
}

// Close releases the texture. Calling it again does nothing.
func (f *Food) Close() error {
	if f.texture == nil {
		return nil
	}
	err := f.texture.Release()
	f.texture = nil
	return err
}
