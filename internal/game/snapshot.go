package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Snapshot captures the observable game state.
type Snapshot struct {
	Tick      uint64
	Score     int
	Running   bool
	Body      []grid.Cell
	Direction grid.Direction
	Growing   bool
	Food      grid.Cell
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Running:   g.running,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Growing:   g.snake.Growing(),
		Food:      g.food.Position(),
	}
}

// String returns a short multi-line description for logs and screenshots.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Running: %v\n", s.Tick, s.Score, s.Running)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(s.Body), s.Direction)
	if len(s.Body) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.Body[0].X, s.Body[0].Y, s.Food.X, s.Food.Y)
	}
	return b.String()
}
