package i

import (
	"github.com/beka-birhanu/kruskal-maze/maze"
	"github.com/beka-birhanu/kruskal-maze/pathfinder"
	"github.com/beka-birhanu/kruskal-maze/service"
	"github.com/google/uuid"
)

// MazeSession manages the current maze and its latest solution.
type MazeSession interface {
	// Generate replaces the current maze. A nil extraCycles uses the default policy.
	Generate(width, height int, extraCycles *int) (*service.Snapshot, error)

	// Current returns a copy of the current maze.
	Current() (*service.Snapshot, error)

	// Solve searches the current maze. Nil endpoints default to the opposite corners.
	Solve(id uuid.UUID, alg pathfinder.Algorithm, start, end *maze.Position) (*service.Solution, error)

	// Solution returns the latest solution.
	Solution() (*service.Solution, error)

	// ClearSolution drops the latest solution and zeroes the stats.
	ClearSolution() error

	// Reset restores every wall of the current maze.
	Reset() error

	// Stats returns per-algorithm metrics.
	Stats() (service.Stats, error)
}
