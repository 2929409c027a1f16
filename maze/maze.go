/*
Package maze provides the rectangular maze model shared by the generator and
the pathfinder.

A Maze is a W×H grid of cells stored row-major, each with four wall flags.
Interior walls are shared: opening one always clears the flag on both sides in
a single OpenEdge call, and the edge is appended to the maze's removal log so
callers can replay construction in order.

Queries outside the grid never fail: CellAt returns a fully walled cell and
HasWall reports a wall, so the boundary behaves as closed.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("maze: width and height must be positive")
	ErrEdgeOutOfBounds  = errors.New("maze: edge endpoint outside the grid")
	ErrNotAdjacent      = errors.New("maze: edge endpoints are not adjacent")
)

// Maze represents a rectangular maze of wall-flagged cells.
type Maze struct {
	width    int
	height   int
	cells    []Cell // row-major, index y*width+x
	removals []Edge // walls opened so far, in order
}

// New creates a fully walled maze of the given dimensions.
func New(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	m := &Maze{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	m.Reset()
	return m, nil
}

// Reset restores every wall and clears the removal log.
// Dimensions are unchanged.
func (m *Maze) Reset() {
	for i := range m.cells {
		m.cells[i] = walledCell
	}
	m.removals = m.removals[:0]
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Size returns the number of cells.
func (m *Maze) Size() int { return m.width * m.height }

// InBounds reports whether (x, y) lies inside the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index returns the row-major index of (x, y). The position must be in bounds.
func (m *Maze) Index(x, y int) int {
	return y*m.width + x
}

// CellAt returns a copy of the cell at (x, y), or a fully walled cell if the
// position is outside the grid.
func (m *Maze) CellAt(x, y int) Cell {
	if !m.InBounds(x, y) {
		return walledCell
	}
	return m.cells[m.Index(x, y)]
}

// HasWall reports whether the cell at (x, y) has a wall on side d.
// Out-of-range positions and unknown directions report a wall.
func (m *Maze) HasWall(x, y int, d Direction) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.cells[m.Index(x, y)].HasWall(d)
}

// OpenEdge removes the wall shared by the two cells of e, clearing the
// matching flag on both sides, and appends e to the removal log.
// Invalid edges leave the maze untouched.
func (m *Maze) OpenEdge(e Edge) error {
	if !m.InBounds(e.From.X, e.From.Y) || !m.InBounds(e.To.X, e.To.Y) {
		return fmt.Errorf("%w: %s", ErrEdgeOutOfBounds, e)
	}
	if !e.IsAdjacent() {
		return fmt.Errorf("%w: %s", ErrNotAdjacent, e)
	}

	d := e.Direction()
	m.cells[m.Index(e.From.X, e.From.Y)].openSide(d)
	m.cells[m.Index(e.To.X, e.To.Y)].openSide(d.Opposite())
	m.removals = append(m.removals, e)
	return nil
}

// RemovalLog returns the opened edges in the order they were opened.
// The returned slice is a copy.
func (m *Maze) RemovalLog() []Edge {
	log := make([]Edge, len(m.removals))
	copy(log, m.removals)
	return log
}

// InternalEdges lists every wall between two in-bound cells exactly once:
// first the walls between vertically adjacent cells, row by row, then the
// walls between horizontally adjacent cells.
func (m *Maze) InternalEdges() []Edge {
	edges := make([]Edge, 0, m.width*(m.height-1)+m.height*(m.width-1))

	for y := 0; y < m.height-1; y++ {
		for x := 0; x < m.width; x++ {
			edges = append(edges, Edge{From: Position{X: x, Y: y}, To: Position{X: x, Y: y + 1}})
		}
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width-1; x++ {
			edges = append(edges, Edge{From: Position{X: x, Y: y}, To: Position{X: x + 1, Y: y}})
		}
	}

	return edges
}

// Grid returns a copy of the cells as rows, top row first.
func (m *Maze) Grid() [][]Cell {
	grid := make([][]Cell, m.height)
	for y := range grid {
		grid[y] = make([]Cell, m.width)
		copy(grid[y], m.cells[y*m.width:(y+1)*m.width])
	}
	return grid
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < m.width; x++ {
		if m.HasWall(x, 0, Top) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < m.height; y++ {
		// Cell rows
		if m.HasWall(0, y, Left) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < m.width; x++ {
			if m.HasWall(x, y, Right) {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for x := 0; x < m.width; x++ {
			if m.HasWall(x, y, Bottom) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
