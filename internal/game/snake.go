package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Snake is an ordered body of cells, head first.
type Snake struct {
	body      []grid.Cell // Head at index 0
	direction grid.Direction
	growing   bool // If true, keep the tail on the next move
}

// initialBody is where every game starts: three cells in a row, facing right.
var initialBody = []grid.Cell{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}

// NewSnake creates a snake in its starting position.
func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset puts the snake back to its starting body and heading.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], initialBody...)
	s.direction = grid.Right
	s.growing = false
}

// Move advances the head one cell. The tail is dropped unless a growth is
// pending. The new head may leave the field; the caller checks that.
func (s *Snake) Move() {
	newHead := s.body[0].Add(s.direction)
	s.body = append(s.body, grid.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow makes the next Move keep the tail.
func (s *Snake) Grow() {
	s.growing = true
}

// Growing reports whether a growth is pending.
func (s *Snake) Growing() bool {
	return s.growing
}

// Direction returns the current heading.
func (s *Snake) Direction() grid.Direction {
	return s.direction
}

// SetDirection changes the heading unconditionally. Reversal rules are
// enforced by the game's input handling.
func (s *Snake) SetDirection(d grid.Direction) {
	s.direction = d
}

// Head returns the first cell of the body.
func (s *Snake) Head() grid.Cell {
	return s.body[0]
}

// Len returns the number of cells in the body.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []grid.Cell {
	out := make([]grid.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Contains reports whether the body occupies c. With excludeHead the head
// cell is skipped, which is how self collisions are detected.
func (s *Snake) Contains(c grid.Cell, excludeHead bool) bool {
	cells := s.body
	if excludeHead {
		cells = cells[1:]
	}
	return containsCell(cells, c)
}

// Draw renders every segment as a filled cell.
func (s *Snake) Draw(c Canvas) {
	geo := c.Geometry()
	for _, seg := range s.body {
		c.FillCell(geo.CellRect(seg), core.ColorInk)
	}
}

// containsCell is the membership test shared by collision checks and food placement.
func containsCell(cells []grid.Cell, c grid.Cell) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}
