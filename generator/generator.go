// Package generator carves mazes with randomized Kruskal's algorithm and can
// reintroduce a bounded number of cycles afterwards.
//
// The spanning-tree phase opens exactly W·H-1 walls, so every generated maze
// is fully connected. The cycle phase only opens further walls that the tree
// phase skipped, adding alternate routes without removing any.
package generator

import (
	"math/rand"
	"time"

	"github.com/beka-birhanu/kruskal-maze/disjointset"
	"github.com/beka-birhanu/kruskal-maze/maze"
)

// defaultCycleDivisor gives one extra cycle per this many cells.
const defaultCycleDivisor = 20

// Generator shuffles candidate walls with its own random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator reproducible. Intended for tests and replays.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// New returns a Generator seeded from fresh entropy unless an option says
// otherwise.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// DefaultExtraCycles returns the number of extra cycles the application
// injects by default: one per twenty cells, rounded down.
func DefaultExtraCycles(width, height int) int {
	return width * height / defaultCycleDivisor
}

// Generate creates a width×height maze, carves it, and returns it together
// with its ordered wall-removal log.
func (g *Generator) Generate(width, height, extraCycles int) (*maze.Maze, []maze.Edge, error) {
	m, err := maze.New(width, height)
	if err != nil {
		return nil, nil, err
	}
	return m, g.Carve(m, extraCycles), nil
}

// Carve resets m and opens walls until it is a spanning tree, then opens up
// to extraCycles of the skipped walls. Negative extraCycles counts as zero;
// requests above the number of skipped walls are clamped.
// It returns the removal log in opening order.
func (g *Generator) Carve(m *maze.Maze, extraCycles int) []maze.Edge {
	m.Reset()

	edges := m.InternalEdges()
	g.shuffle(edges)

	sets := disjointset.New(m.Size())
	skipped := make([]maze.Edge, 0, len(edges)-m.Size()+1)

	for _, e := range edges {
		a := m.Index(e.From.X, e.From.Y)
		b := m.Index(e.To.X, e.To.Y)
		if !sets.Union(a, b) {
			// would close a cycle
			skipped = append(skipped, e)
			continue
		}
		mustOpen(m, e)
	}

	g.shuffle(skipped)
	extra := min(max(extraCycles, 0), len(skipped))
	for _, e := range skipped[:extra] {
		mustOpen(m, e)
	}

	return m.RemovalLog()
}

func (g *Generator) shuffle(edges []maze.Edge) {
	g.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})
}

// mustOpen opens an edge produced by InternalEdges, which is always valid.
func mustOpen(m *maze.Maze, e maze.Edge) {
	if err := m.OpenEdge(e); err != nil {
		panic(err)
	}
}
