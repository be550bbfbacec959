// Package grid defines the playing field: cell coordinates, movement
// directions and the geometry that maps cells to screen space.
package grid

// CellCount is the number of rows and columns of the playing field.
const CellCount = 25

// Cell is an integer grid coordinate. During a tick the snake's head may
// briefly sit at -1 or CellCount on an axis before the edge check fires.
type Cell struct {
	X, Y int
}

// Add returns the cell one step from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// InBounds reports whether the cell lies inside the playing field.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < CellCount && c.Y >= 0 && c.Y < CellCount
}

// Direction is a unit step along one axis.
type Direction struct {
	X, Y int
}

// The four movement directions. Y grows downward.
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
