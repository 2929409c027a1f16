// Package mazeapi exposes maze generation, solving and replay over HTTP.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/kruskal-maze/maze"
	"github.com/beka-birhanu/kruskal-maze/service"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to carve a new maze.
type GenerateRequest struct {
	Width       int  `json:"width" binding:"required"`
	Height      int  `json:"height" binding:"required"`
	ExtraCycles *int `json:"extra_cycles"` // nil selects the default policy
}

// SolveRequest represents a request to search the current maze.
type SolveRequest struct {
	ID        uuid.UUID      `json:"id"` // optional; rejects stale mazes when set
	Algorithm string         `json:"algorithm" binding:"required"`
	Start     *maze.Position `json:"start"`
	End       *maze.Position `json:"end"`
}

// MazeResponse represents the current maze.
type MazeResponse struct {
	ID          uuid.UUID     `json:"id"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	ExtraCycles int           `json:"extra_cycles"`
	Cells       [][]maze.Cell `json:"cells"`
	Removals    []maze.Edge   `json:"removals"`
	ASCII       string        `json:"ascii"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// SolutionResponse represents the outcome of a search.
type SolutionResponse struct {
	MazeID     uuid.UUID       `json:"maze_id"`
	Algorithm  string          `json:"algorithm"`
	Start      maze.Position   `json:"start"`
	End        maze.Position   `json:"end"`
	Found      bool            `json:"found"`
	Path       []maze.Position `json:"path"`
	Explored   []maze.Position `json:"explored"`
	Steps      int             `json:"steps"`
	DurationMS float64         `json:"duration_ms"`
}

// AlgorithmStatsResponse holds the metrics of one algorithm.
type AlgorithmStatsResponse struct {
	Runs            int     `json:"runs"`
	Steps           int     `json:"steps"`
	DurationMS      float64 `json:"duration_ms"`
	TimeComplexity  string  `json:"time_complexity"`
	SpaceComplexity string  `json:"space_complexity"`
}

// StatsResponse holds the metrics of both algorithms.
type StatsResponse struct {
	BFS AlgorithmStatsResponse `json:"bfs"`
	DFS AlgorithmStatsResponse `json:"dfs"`
}

// Frame is one replay event payload.
type Frame[T any] struct {
	Index int `json:"index"`
	Total int `json:"total"`
	Data  T   `json:"data"`
}

// SearchStep is a search replay frame: an explored cell, then path cells.
type SearchStep struct {
	Phase string        `json:"phase"` // "explore" or "path"
	Cell  maze.Position `json:"cell"`
}

func newMazeResponse(s *service.Snapshot) *MazeResponse {
	return &MazeResponse{
		ID:          s.ID,
		Width:       s.Width,
		Height:      s.Height,
		ExtraCycles: s.ExtraCycles,
		Cells:       s.Cells,
		Removals:    s.Removals,
		ASCII:       s.Rendered,
		GeneratedAt: s.GeneratedAt,
	}
}

func newSolutionResponse(s *service.Solution) *SolutionResponse {
	return &SolutionResponse{
		MazeID:     s.MazeID,
		Algorithm:  s.Algorithm.String(),
		Start:      s.Start,
		End:        s.End,
		Found:      s.Result.Found,
		Path:       s.Result.Path,
		Explored:   s.Result.Explored,
		Steps:      s.Result.Steps,
		DurationMS: milliseconds(s.Duration),
	}
}

func newStatsResponse(s service.Stats) *StatsResponse {
	conv := func(a service.AlgorithmStats) AlgorithmStatsResponse {
		return AlgorithmStatsResponse{
			Runs:            a.Runs,
			Steps:           a.Steps,
			DurationMS:      milliseconds(a.Duration),
			TimeComplexity:  a.TimeComplexity,
			SpaceComplexity: a.SpaceComplexity,
		}
	}
	return &StatsResponse{BFS: conv(s.BFS), DFS: conv(s.DFS)}
}

// searchSteps flattens a solution into explore frames followed by path frames.
func searchSteps(s *service.Solution) []SearchStep {
	steps := make([]SearchStep, 0, len(s.Result.Explored)+len(s.Result.Path))
	for _, c := range s.Result.Explored {
		steps = append(steps, SearchStep{Phase: "explore", Cell: c})
	}
	for _, c := range s.Result.Path {
		steps = append(steps, SearchStep{Phase: "path", Cell: c})
	}
	return steps
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
