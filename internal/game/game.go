// Package game implements the Snake rules: movement, food, collisions and
// the hard reset on game over. It has no terminal or timing dependencies;
// the platform decides when to tick and how to draw.
package game

import (
	"strconv"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// DefaultTitle is the heading drawn above the field.
const DefaultTitle = "Jake the Snake"

// Cause says why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Result describes what happened during one Update.
type Result struct {
	Moved    bool
	Ate      bool
	GameOver bool
	Cause    Cause
	Score    int // Score reached on this tick, before any reset
}

// Options configures a new game.
type Options struct {
	Title      string
	FoodSprite string // Sprite path passed to the texture loader
	Seed       int64
}

// Game owns the snake and the food and applies the rules once per tick.
type Game struct {
	snake   *Snake
	food    *Food
	title   string
	running bool
	score   int
	tick    uint64
}

// directionKeys is the order in which pressed keys are considered.
var directionKeys = []struct {
	action core.Action
	dir    grid.Direction
}{
	{core.ActionUp, grid.Up},
	{core.ActionDown, grid.Down},
	{core.ActionLeft, grid.Left},
	{core.ActionRight, grid.Right},
}

// New creates a running game. The food texture is loaded through loader and
// stays owned by the game until Close.
func New(loader TextureLoader, opts Options) (*Game, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.FoodSprite == "" {
		opts.FoodSprite = assets.FoodSprite
	}

	snake := NewSnake()
	food, err := NewFood(loader, opts.FoodSprite, rand.New(rand.NewSource(uint64(opts.Seed))), snake.body)
	if err != nil {
		return nil, err
	}

	return &Game{
		snake:   snake,
		food:    food,
		title:   opts.Title,
		running: true,
	}, nil
}

// Update advances the game by one tick. It does nothing while the game
// waits for input after a game over.
func (g *Game) Update() Result {
	if !g.running {
		return Result{Score: g.score}
	}
	g.tick++

	g.snake.Move()
	res := Result{Moved: true}

	// Food is resolved first: a snake that eats and crashes on the same
	// tick still scores before the reset.
	if g.snake.Head() == g.food.Position() {
		g.food.Spawn(g.snake.body)
		g.snake.Grow()
		g.score++
		res.Ate = true
	}
	res.Score = g.score

	head := g.snake.Head()
	switch {
	case !head.InBounds():
		res.Cause = CauseWall
	case g.snake.Contains(head, true):
		res.Cause = CauseSelf
	}

	if res.Cause != CauseNone {
		g.GameOver()
		res.GameOver = true
	}
	return res
}

// GameOver resets the snake, moves the food and waits for the next
// direction key. The score is not kept.
func (g *Game) GameOver() {
	g.snake.Reset()
	g.food.Spawn(g.snake.body)
	g.running = false
	g.score = 0
}

// HandleInput applies at most one direction key from the frame. Keys are
// tried in the order up, down, left, right; a key pointing straight back
// is skipped. Any accepted key also resumes a stopped game.
func (g *Game) HandleInput(in core.InputFrame) bool {
	for _, k := range directionKeys {
		if !in.Has(k.action) {
			continue
		}
		if k.dir == g.snake.Direction().Opposite() {
			continue
		}
		g.snake.SetDirection(k.dir)
		g.running = true
		return true
	}
	return false
}

// Draw renders the frame: border, title, score, food and snake.
func (g *Game) Draw(c Canvas) {
	geo := c.Geometry()
	c.Clear(core.ColorField)
	c.StrokeRect(geo.BorderRect(), geo.BorderWidth, core.ColorInk)

	tx, ty := geo.TitlePos()
	c.DrawText(g.title, tx, ty, geo.TextSize, core.ColorInk)

	sx, sy := geo.ScorePos()
	c.DrawText(strconv.Itoa(g.score), sx, sy, geo.TextSize, core.ColorInk)

	g.food.Draw(c)
	g.snake.Draw(c)
}

// Close releases the resources owned by the game.
func (g *Game) Close() error {
	return g.food.Close()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Running reports whether the snake is moving.
func (g *Game) Running() bool {
	return g.running
}

// Title returns the heading drawn above the field.
func (g *Game) Title() string {
	return g.title
}

// Snake returns the game's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the game's food.
func (g *Game) Food() *Food {
	return g.food
}
