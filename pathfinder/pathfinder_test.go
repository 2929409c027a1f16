package pathfinder

import (
	"testing"

	"github.com/beka-birhanu/kruskal-maze/generator"
	"github.com/beka-birhanu/kruskal-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(x, y int) maze.Position { return maze.Position{X: x, Y: y} }

// buildMaze returns a w×h maze with exactly the given walls opened.
func buildMaze(t *testing.T, w, h int, open ...maze.Edge) *maze.Maze {
	t.Helper()
	m, err := maze.New(w, h)
	require.NoError(t, err)
	for _, e := range open {
		require.NoError(t, m.OpenEdge(e))
	}
	return m
}

func TestNewOutOfBounds(t *testing.T) {
	m := buildMaze(t, 3, 3)

	for _, tc := range []struct {
		name       string
		start, end maze.Position
	}{
		{"start left of grid", pos(-1, 0), pos(2, 2)},
		{"start below grid", pos(0, 3), pos(2, 2)},
		{"end right of grid", pos(0, 0), pos(3, 2)},
		{"end above grid", pos(0, 0), pos(0, -1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, err := New(m, tc.start, tc.end)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			assert.Nil(t, f)

			res, err := Solve(m, BFS, tc.start, tc.end)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			assert.Nil(t, res)
		})
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	m := buildMaze(t, 2, 2)

	_, err := Solve(m, Algorithm(5), pos(0, 0), pos(1, 1))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = ParseAlgorithm("astar")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	alg, err := ParseAlgorithm(" Dfs ")
	require.NoError(t, err)
	assert.Equal(t, DFS, alg)
	assert.Equal(t, "BFS", BFS.String())
}

func TestTwoByOne(t *testing.T) {
	m := buildMaze(t, 2, 1, maze.Edge{From: pos(0, 0), To: pos(1, 0)})

	for _, alg := range []Algorithm{BFS, DFS} {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := Solve(m, alg, pos(0, 0), pos(1, 0))
			require.NoError(t, err)

			assert.True(t, res.Found)
			assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0)}, res.Path)
			assert.Equal(t, 2, res.Steps)
			assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0)}, res.Explored)
			assert.Equal(t, 1, res.PathLength())
		})
	}
}

func TestStartEqualsEnd(t *testing.T) {
	m, _, err := generator.New().Generate(4, 4, 2)
	require.NoError(t, err)

	for _, alg := range []Algorithm{BFS, DFS} {
		res, err := Solve(m, alg, pos(2, 1), pos(2, 1))
		require.NoError(t, err)

		assert.True(t, res.Found)
		assert.Equal(t, []maze.Position{pos(2, 1)}, res.Path)
		assert.Equal(t, []maze.Position{pos(2, 1)}, res.Explored)
		assert.Equal(t, 1, res.Steps)
		assert.Equal(t, 0, res.PathLength())
	}
}

func TestUnreachable(t *testing.T) {
	t.Run("ungenerated maze", func(t *testing.T) {
		m := buildMaze(t, 3, 3)

		for _, alg := range []Algorithm{BFS, DFS} {
			res, err := Solve(m, alg, pos(0, 0), pos(2, 2))
			require.NoError(t, err)

			assert.False(t, res.Found)
			assert.NotNil(t, res.Path)
			assert.Empty(t, res.Path)
			assert.Equal(t, []maze.Position{pos(0, 0)}, res.Explored)
			assert.Equal(t, 1, res.Steps)
			assert.Equal(t, -1, res.PathLength())
		}
	})

	t.Run("disconnected halves", func(t *testing.T) {
		// Left column connected, right column connected, nothing between.
		m := buildMaze(t, 2, 3,
			maze.Edge{From: pos(0, 0), To: pos(0, 1)},
			maze.Edge{From: pos(0, 1), To: pos(0, 2)},
			maze.Edge{From: pos(1, 0), To: pos(1, 1)},
		)

		res, err := Solve(m, BFS, pos(0, 0), pos(1, 1))
		require.NoError(t, err)

		assert.False(t, res.Found)
		assert.Equal(t, []maze.Position{pos(0, 0), pos(0, 1), pos(0, 2)}, res.Explored)
		assert.Equal(t, 3, res.Steps)
	})
}

// square is a 2×2 maze with (0,0)-(1,0), (1,0)-(1,1) and (0,0)-(0,1) open.
func square(t *testing.T) *maze.Maze {
	return buildMaze(t, 2, 2,
		maze.Edge{From: pos(0, 0), To: pos(1, 0)},
		maze.Edge{From: pos(1, 0), To: pos(1, 1)},
		maze.Edge{From: pos(0, 0), To: pos(0, 1)},
	)
}

func TestBFSTrace(t *testing.T) {
	res, err := Solve(square(t), BFS, pos(0, 0), pos(1, 1))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0), pos(1, 1)}, res.Path)
	assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0), pos(0, 1), pos(1, 1)}, res.Explored)
	assert.Equal(t, 4, res.Steps)
}

func TestDFSTrace(t *testing.T) {
	res, err := Solve(square(t), DFS, pos(0, 0), pos(1, 1))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0), pos(1, 1)}, res.Path)
	// Reversed push order: (0,1) is pushed before (1,0), so (1,0) pops first.
	assert.Equal(t, []maze.Position{pos(0, 0), pos(0, 1), pos(1, 0), pos(1, 1)}, res.Explored)
	assert.Equal(t, 3, res.Steps)
}

func TestGeneratedMazeProperties(t *testing.T) {
	g := generator.New()

	for i := 0; i < 20; i++ {
		w, h := 2+i%9, 2+(i*7)%11
		m, _, err := g.Generate(w, h, generator.DefaultExtraCycles(w, h)+i)
		require.NoError(t, err)

		start, end := pos(0, 0), pos(w-1, h-1)
		bfs, err := Solve(m, BFS, start, end)
		require.NoError(t, err)
		dfs, err := Solve(m, DFS, start, end)
		require.NoError(t, err)

		for _, res := range []*Result{bfs, dfs} {
			require.True(t, res.Found)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, end, res.Path[len(res.Path)-1])
			assert.Equal(t, start, res.Explored[0])
			assert.LessOrEqual(t, res.Steps, len(res.Explored))
			assert.LessOrEqual(t, len(res.Explored), w*h)
			assertConnectedPath(t, m, res.Path)
		}
		assert.LessOrEqual(t, bfs.PathLength(), dfs.PathLength())
	}
}

func TestEveryCellReachable(t *testing.T) {
	m, _, err := generator.New().Generate(12, 8, 0)
	require.NoError(t, err)

	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			res, err := Solve(m, BFS, pos(0, 0), pos(x, y))
			require.NoError(t, err)
			assert.True(t, res.Found, "cell %s unreachable", pos(x, y))
		}
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	m, _, err := generator.New().Generate(15, 15, 10)
	require.NoError(t, err)

	f, err := New(m, pos(0, 0), pos(14, 14))
	require.NoError(t, err)

	for _, alg := range []Algorithm{BFS, DFS} {
		first, err := f.Solve(alg)
		require.NoError(t, err)
		second, err := f.Solve(alg)
		require.NoError(t, err)

		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, first.Steps, second.Steps)
		assert.Equal(t, first.Explored, second.Explored)
	}
}

func TestBFSIsShortestOnCycles(t *testing.T) {
	// Fully open 3×3: the shortest corner-to-corner route has 4 edges.
	m := buildMaze(t, 3, 3)
	for _, e := range m.InternalEdges() {
		require.NoError(t, m.OpenEdge(e))
	}

	res, err := Solve(m, BFS, pos(0, 0), pos(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, res.PathLength())
}

// assertConnectedPath checks that consecutive path cells share an open wall.
func assertConnectedPath(t *testing.T, m *maze.Maze, path []maze.Position) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		e := maze.Edge{From: path[i-1], To: path[i]}
		require.True(t, e.IsAdjacent(), "step %s", e)
		assert.False(t, m.HasWall(e.From.X, e.From.Y, e.Direction()), "wall on %s", e)
	}
}

func BenchmarkBFS(b *testing.B) {
	m, _, _ := generator.New(generator.WithSeed(3)).Generate(50, 50, 125)
	f, _ := New(m, pos(0, 0), pos(49, 49))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.BFS()
	}
}

func BenchmarkDFS(b *testing.B) {
	m, _, _ := generator.New(generator.WithSeed(3)).Generate(50, 50, 125)
	f, _ := New(m, pos(0, 0), pos(49, 49))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.DFS()
	}
}
