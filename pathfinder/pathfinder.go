// Package pathfinder searches a maze for a route between two cells using
// breadth-first or depth-first search.
//
// Two cells are adjacent when the source cell reports no wall on the shared
// side and the neighbor lies inside the grid. Neighbors are considered in the
// order top, right, bottom, left; DFS pushes them in reverse so that it
// expands them in that same order.
//
// Searches are deterministic for a fixed maze: solving twice yields the same
// Path, Explored and Steps.
package pathfinder

import (
	"fmt"

	"github.com/beka-birhanu/kruskal-maze/maze"
)

// Finder holds a maze and fixed endpoints. It keeps no state between
// searches, so one Finder may run any number of them.
type Finder struct {
	grid  Grid
	start maze.Position
	end   maze.Position
}

// New validates the endpoints against g and returns a Finder.
func New(g Grid, start, end maze.Position) (*Finder, error) {
	for _, p := range []maze.Position{start, end} {
		if !inBounds(g, p) {
			return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.Width(), g.Height())
		}
	}
	return &Finder{grid: g, start: start, end: end}, nil
}

// Solve runs the given algorithm on g between start and end.
func Solve(g Grid, alg Algorithm, start, end maze.Position) (*Result, error) {
	f, err := New(g, start, end)
	if err != nil {
		return nil, err
	}
	return f.Solve(alg)
}

// Solve runs the given algorithm.
func (f *Finder) Solve(alg Algorithm) (*Result, error) {
	switch alg {
	case BFS:
		return f.BFS(), nil
	case DFS:
		return f.DFS(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// BFS searches with a FIFO frontier. A found Path is a shortest path.
func (f *Finder) BFS() *Result {
	return f.search(&queue{}, false)
}

// DFS searches with a LIFO frontier.
func (f *Finder) DFS() *Result {
	return f.search(&stack{}, true)
}

// frontier is the set of cells waiting to be expanded.
type frontier interface {
	push(maze.Position)
	pop() maze.Position
	empty() bool
}

type queue struct {
	items []maze.Position
	head  int
}

func (q *queue) push(p maze.Position) { q.items = append(q.items, p) }

func (q *queue) pop() maze.Position {
	p := q.items[q.head]
	q.head++
	return p
}

func (q *queue) empty() bool { return q.head == len(q.items) }

type stack struct {
	items []maze.Position
}

func (s *stack) push(p maze.Position) { s.items = append(s.items, p) }

func (s *stack) pop() maze.Position {
	last := len(s.items) - 1
	p := s.items[last]
	s.items = s.items[:last]
	return p
}

func (s *stack) empty() bool { return len(s.items) == 0 }

// walker carries the bookkeeping of a single search.
type walker struct {
	width   int
	visited []bool
	parent  []int // index of the cell we came from, -1 for the start
	res     *Result
}

func (f *Finder) search(front frontier, reverse bool) *Result {
	size := f.grid.Width() * f.grid.Height()
	w := &walker{
		width:   f.grid.Width(),
		visited: make([]bool, size),
		parent:  make([]int, size),
		res: &Result{
			Path:     []maze.Position{},
			Explored: make([]maze.Position, 0, size),
		},
	}

	w.visit(f.start, -1)
	front.push(f.start)

	for !front.empty() {
		cur := front.pop()
		w.res.Steps++

		if cur == f.end {
			w.res.Found = true
			w.res.Path = w.trace(f.end)
			return w.res
		}

		nbrs := f.neighbors(cur)
		if reverse {
			for i, j := 0, len(nbrs)-1; i < j; i, j = i+1, j-1 {
				nbrs[i], nbrs[j] = nbrs[j], nbrs[i]
			}
		}
		for _, n := range nbrs {
			if !w.visited[w.index(n)] {
				w.visit(n, w.index(cur))
				front.push(n)
			}
		}
	}

	return w.res
}

func (w *walker) index(p maze.Position) int {
	return p.Y*w.width + p.X
}

func (w *walker) visit(p maze.Position, from int) {
	idx := w.index(p)
	w.visited[idx] = true
	w.parent[idx] = from
	w.res.Explored = append(w.res.Explored, p)
}

// trace walks parent links back from end and returns the path start to end.
func (w *walker) trace(end maze.Position) []maze.Position {
	var path []maze.Position
	for idx := w.index(end); idx != -1; idx = w.parent[idx] {
		path = append(path, maze.Position{X: idx % w.width, Y: idx / w.width})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// neighbors returns the reachable neighbors of p in canonical order.
func (f *Finder) neighbors(p maze.Position) []maze.Position {
	nbrs := make([]maze.Position, 0, len(maze.Directions))
	for _, d := range maze.Directions {
		n := p.Step(d)
		if !f.grid.HasWall(p.X, p.Y, d) && inBounds(f.grid, n) {
			nbrs = append(nbrs, n)
		}
	}
	return nbrs
}

func inBounds(g Grid, p maze.Position) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}
