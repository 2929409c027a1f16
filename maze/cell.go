package maze

import "fmt"

// Direction names one side of a cell.
type Direction int

const (
	Top    Direction = iota // Top is the side facing y-1.
	Right                   // Right is the side facing x+1.
	Bottom                  // Bottom is the side facing y+1.
	Left                    // Left is the side facing x-1.
)

// Directions lists every direction in canonical order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

var directionDeltas = [4]Position{
	Top:    {X: 0, Y: -1},
	Right:  {X: 1, Y: 0},
	Bottom: {X: 0, Y: 1},
	Left:   {X: -1, Y: 0},
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= Top && d <= Left
}

// Opposite returns the direction facing back across the same wall.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the coordinate offset of the neighbor in direction d.
func (d Direction) Delta() Position {
	return directionDeltas[d]
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Cell represents a single cell in a maze grid.
// A freshly created cell has all four walls.
type Cell struct {
	TopWall    bool `json:"top"`    // TopWall indicates whether there is a wall on the top side of the cell.
	RightWall  bool `json:"right"`  // RightWall indicates whether there is a wall on the right side of the cell.
	BottomWall bool `json:"bottom"` // BottomWall indicates whether there is a wall on the bottom side of the cell.
	LeftWall   bool `json:"left"`   // LeftWall indicates whether there is a wall on the left side of the cell.
}

// walledCell is the state of every cell before generation.
var walledCell = Cell{TopWall: true, RightWall: true, BottomWall: true, LeftWall: true}

// HasWall reports whether the cell has a wall on side d.
// Unknown directions report a wall.
func (c Cell) HasWall(d Direction) bool {
	switch d {
	case Top:
		return c.TopWall
	case Right:
		return c.RightWall
	case Bottom:
		return c.BottomWall
	case Left:
		return c.LeftWall
	default:
		return true
	}
}

// openSide clears a single flag. Only Maze.OpenEdge calls it, always in pairs.
func (c *Cell) openSide(d Direction) {
	switch d {
	case Top:
		c.TopWall = false
	case Right:
		c.RightWall = false
	case Bottom:
		c.BottomWall = false
	case Left:
		c.LeftWall = false
	}
}

// Position represents the coordinates of a cell, origin at the top-left.
type Position struct {
	X int `json:"x"` // X is the column index.
	Y int `json:"y"` // Y is the row index.
}

// Step returns the neighboring position in direction d.
func (p Position) Step(d Direction) Position {
	delta := d.Delta()
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Edge is the wall shared by two adjacent cells.
type Edge struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// IsAdjacent reports whether the endpoints differ by exactly one step along
// exactly one axis.
func (e Edge) IsAdjacent() bool {
	dx, dy := e.To.X-e.From.X, e.To.Y-e.From.Y
	return dx*dx+dy*dy == 1
}

// Direction returns the side of From that faces To.
// The result is meaningless unless IsAdjacent is true.
func (e Edge) Direction() Direction {
	switch {
	case e.To.Y < e.From.Y:
		return Top
	case e.To.X > e.From.X:
		return Right
	case e.To.Y > e.From.Y:
		return Bottom
	default:
		return Left
	}
}

func (e Edge) String() string {
	return e.From.String() + "-" + e.To.String()
}
