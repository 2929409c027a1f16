package pathfinder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/kruskal-maze/maze"
)

var (
	// ErrOutOfBounds is returned when a start or end position is outside the grid.
	ErrOutOfBounds = errors.New("pathfinder: position out of bounds")

	// ErrUnknownAlgorithm is returned for algorithms other than BFS and DFS.
	ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	BFS Algorithm = iota // BFS uses a FIFO frontier and finds shortest paths.
	DFS                  // DFS uses a LIFO frontier.
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "bfs" or "dfs", in any case, to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Grid is the read-only view of a maze needed for searching.
// *maze.Maze satisfies it.
type Grid interface {
	Width() int
	Height() int
	HasWall(x, y int, d maze.Direction) bool
}

// Result is the outcome of one search.
//
// Steps counts frontier removals (dequeues or pops), while Explored records
// cells in the order they were first reached. The two usually differ.
type Result struct {
	Path     []maze.Position // start to end inclusive; empty if not found
	Explored []maze.Position // visit order, always starts with the start cell
	Steps    int             // number of dequeue/pop operations
	Found    bool            // whether end is reachable from start
}

// PathLength returns the number of edges in Path, or -1 if no path was found.
func (r *Result) PathLength() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
