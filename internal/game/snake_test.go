package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

func TestSnakeInitialState(t *testing.T) {
	s := NewSnake()

	expected := []grid.Cell{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}
	if !reflect.DeepEqual(s.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", s.Body(), expected)
	}
	if s.Direction() != grid.Right {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if s.Growing() {
		t.Error("new snake should not be growing")
	}
}

func TestSnakeMoveKeepsLength(t *testing.T) {
	s := NewSnake()

	for i := 0; i < 5; i++ {
		s.Move()
		if s.Len() != 3 {
			t.Fatalf("move %d: Len() = %d, expected 3", i, s.Len())
		}
	}

	expected := []grid.Cell{{X: 11, Y: 9}, {X: 10, Y: 9}, {X: 9, Y: 9}}
	if !reflect.DeepEqual(s.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", s.Body(), expected)
	}
}

func TestSnakeMoveWithGrowth(t *testing.T) {
	s := NewSnake()
	s.Grow()
	s.Move()

	if s.Len() != 4 {
		t.Errorf("Len() = %d after growing move, expected 4", s.Len())
	}
	if s.Growing() {
		t.Error("growth flag should be cleared after one move")
	}

	expected := []grid.Cell{{X: 7, Y: 9}, {X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}
	if !reflect.DeepEqual(s.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", s.Body(), expected)
	}

	s.Move()
	if s.Len() != 4 {
		t.Errorf("Len() = %d after plain move, expected 4", s.Len())
	}
}

func TestSnakeMoveOffField(t *testing.T) {
	s := NewSnake()
	s.body = []grid.Cell{{X: 0, Y: 3}, {X: 1, Y: 3}}
	s.SetDirection(grid.Left)
	s.Move()

	if s.Head() != (grid.Cell{X: -1, Y: 3}) {
		t.Errorf("Head() = %v, expected (-1, 3)", s.Head())
	}
}

func TestSnakeResetIdempotent(t *testing.T) {
	s := NewSnake()
	s.Grow()
	s.Move()
	s.SetDirection(grid.Down)
	s.Move()

	s.Reset()
	once := s.Body()
	onceDir := s.Direction()

	s.Reset()
	if !reflect.DeepEqual(s.Body(), once) || s.Direction() != onceDir {
		t.Errorf("second Reset changed state: %v %v vs %v %v", s.Body(), s.Direction(), once, onceDir)
	}
	if !reflect.DeepEqual(once, initialBody) || onceDir != grid.Right {
		t.Errorf("Reset() = %v %v, expected initial body facing right", once, onceDir)
	}
	if s.Growing() {
		t.Error("Reset should leave growth off")
	}
}

func TestSnakeContains(t *testing.T) {
	s := NewSnake()

	tests := []struct {
		name        string
		cell        grid.Cell
		excludeHead bool
		expected    bool
	}{
		{"head included", grid.Cell{X: 6, Y: 9}, false, true},
		{"head excluded", grid.Cell{X: 6, Y: 9}, true, false},
		{"tail", grid.Cell{X: 4, Y: 9}, true, true},
		{"empty cell", grid.Cell{X: 0, Y: 0}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Contains(tc.cell, tc.excludeHead); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.cell, tc.excludeHead, got, tc.expected)
			}
		})
	}
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake()
	body := s.Body()
	body[0] = grid.Cell{X: 99, Y: 99}

	if s.Head() == body[0] {
		t.Error("Body() should return a copy")
	}
}
