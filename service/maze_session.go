package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/kruskal-maze/generator"
	"github.com/beka-birhanu/kruskal-maze/maze"
	"github.com/beka-birhanu/kruskal-maze/pathfinder"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultMinDimension = 5
	defaultMaxDimension = 50
	defaultCycleDivisor = 20

	// Both searches visit each cell and each open wall at most once.
	timeComplexity  = "O(V + E)"
	spaceComplexity = "O(V)"
)

var (
	ErrNoMaze              = errors.New("no maze has been generated")
	ErrNoSolution          = errors.New("maze has not been solved")
	ErrStaleMaze           = errors.New("maze id does not match the current maze")
	ErrDimensionOutOfRange = errors.New("maze dimension out of range")
	ErrNegativeCycles      = errors.New("extra cycles must not be negative")
)

// Limits bounds the accepted maze width and height, inclusive.
type Limits struct {
	MinDimension int
	MaxDimension int
}

// Snapshot is an immutable copy of the current maze.
type Snapshot struct {
	ID          uuid.UUID
	Width       int
	Height      int
	ExtraCycles int           // walls opened beyond the spanning tree
	Cells       [][]maze.Cell // rows, top first
	Removals    []maze.Edge   // wall-removal log in opening order
	Rendered    string        // ASCII drawing
	GeneratedAt time.Time
}

// Solution is the outcome of one solve call on the current maze.
type Solution struct {
	MazeID    uuid.UUID
	Algorithm pathfinder.Algorithm
	Start     maze.Position
	End       maze.Position
	Result    *pathfinder.Result
	Duration  time.Duration // wall-clock time of the search only
}

// AlgorithmStats holds the latest metrics for one algorithm.
type AlgorithmStats struct {
	Runs            int
	Steps           int
	Duration        time.Duration
	TimeComplexity  string
	SpaceComplexity string
}

// Stats holds per-algorithm metrics since the last generate, clear or reset.
type Stats struct {
	BFS AlgorithmStats
	DFS AlgorithmStats
}

// Config holds the dependencies of a MazeSession.
type Config struct {
	Generator    *generator.Generator
	Limits       Limits
	CycleDivisor int // one default extra cycle per this many cells
	Logger       logrus.FieldLogger
}

// MazeSession owns the single current maze and its latest solution.
// It is safe for concurrent use; every call runs to completion under its lock.
type MazeSession struct {
	generator    *generator.Generator
	limits       Limits
	cycleDivisor int
	logger       logrus.FieldLogger

	id          uuid.UUID
	maze        *maze.Maze
	extraCycles int
	generatedAt time.Time
	solution    *Solution
	stats       Stats
	sync.RWMutex
}

// NewMazeSession creates an empty session. Zero-valued config fields fall
// back to defaults.
func NewMazeSession(c *Config) (*MazeSession, error) {
	s := &MazeSession{
		generator:    c.Generator,
		limits:       c.Limits,
		cycleDivisor: c.CycleDivisor,
		logger:       c.Logger,
	}

	if s.generator == nil {
		s.generator = generator.New()
	}
	if s.limits == (Limits{}) {
		s.limits = Limits{MinDimension: defaultMinDimension, MaxDimension: defaultMaxDimension}
	}
	if s.limits.MinDimension < 1 || s.limits.MaxDimension < s.limits.MinDimension {
		return nil, fmt.Errorf("invalid dimension limits %d..%d", s.limits.MinDimension, s.limits.MaxDimension)
	}
	if s.cycleDivisor == 0 {
		s.cycleDivisor = defaultCycleDivisor
	}
	if s.cycleDivisor < 0 {
		return nil, fmt.Errorf("invalid cycle divisor %d", s.cycleDivisor)
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}

	s.resetStats()
	return s, nil
}

// Generate replaces the current maze with a freshly carved one. A nil
// extraCycles uses one cycle per CycleDivisor cells.
func (s *MazeSession) Generate(width, height int, extraCycles *int) (*Snapshot, error) {
	if !s.inLimits(width) || !s.inLimits(height) {
		return nil, fmt.Errorf("%w: %dx%d not within %d..%d", ErrDimensionOutOfRange,
			width, height, s.limits.MinDimension, s.limits.MaxDimension)
	}

	cycles := width * height / s.cycleDivisor
	if extraCycles != nil {
		if *extraCycles < 0 {
			return nil, ErrNegativeCycles
		}
		cycles = *extraCycles
	}

	s.Lock()
	defer s.Unlock()

	m, log, err := s.generator.Generate(width, height, cycles)
	if err != nil {
		return nil, err
	}

	s.id = uuid.New()
	s.maze = m
	s.extraCycles = len(log) - (m.Size() - 1)
	s.generatedAt = time.Now()
	s.solution = nil
	s.resetStats()

	s.logger.WithFields(logrus.Fields{
		"id":       s.id,
		"width":    width,
		"height":   height,
		"removals": len(log),
		"cycles":   s.extraCycles,
	}).Info("maze generated")

	return s.snapshot(), nil
}

// Current returns a snapshot of the current maze.
func (s *MazeSession) Current() (*Snapshot, error) {
	s.RLock()
	defer s.RUnlock()

	if s.maze == nil {
		return nil, ErrNoMaze
	}
	return s.snapshot(), nil
}

// Solve searches the current maze with alg. Nil endpoints default to the
// top-left and bottom-right cells. A non-nil id must match the current maze.
func (s *MazeSession) Solve(id uuid.UUID, alg pathfinder.Algorithm, start, end *maze.Position) (*Solution, error) {
	s.Lock()
	defer s.Unlock()

	if s.maze == nil {
		return nil, ErrNoMaze
	}
	if id != uuid.Nil && id != s.id {
		return nil, fmt.Errorf("%w: got %s, current %s", ErrStaleMaze, id, s.id)
	}

	from := maze.Position{X: 0, Y: 0}
	to := maze.Position{X: s.maze.Width() - 1, Y: s.maze.Height() - 1}
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}

	f, err := pathfinder.New(s.maze, from, to)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	res, err := f.Solve(alg)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(began)

	s.solution = &Solution{
		MazeID:    s.id,
		Algorithm: alg,
		Start:     from,
		End:       to,
		Result:    res,
		Duration:  elapsed,
	}
	s.record(alg, res.Steps, elapsed)

	s.logger.WithFields(logrus.Fields{
		"id":        s.id,
		"algorithm": alg,
		"found":     res.Found,
		"steps":     res.Steps,
		"explored":  len(res.Explored),
		"path":      len(res.Path),
		"elapsed":   elapsed,
	}).Info("maze solved")

	return s.solution, nil
}

// Solution returns the latest solution.
func (s *MazeSession) Solution() (*Solution, error) {
	s.RLock()
	defer s.RUnlock()

	if s.maze == nil {
		return nil, ErrNoMaze
	}
	if s.solution == nil {
		return nil, ErrNoSolution
	}
	return s.solution, nil
}

// ClearSolution drops the latest solution and zeroes the stats.
func (s *MazeSession) ClearSolution() error {
	s.Lock()
	defer s.Unlock()

	if s.maze == nil {
		return ErrNoMaze
	}
	s.solution = nil
	s.resetStats()
	s.logger.WithField("id", s.id).Info("solution cleared")
	return nil
}

// Reset puts every wall back into the current maze and clears its removal
// log, solution and stats. The maze keeps its id and dimensions.
func (s *MazeSession) Reset() error {
	s.Lock()
	defer s.Unlock()

	if s.maze == nil {
		return ErrNoMaze
	}
	s.maze.Reset()
	s.extraCycles = 0
	s.solution = nil
	s.resetStats()
	s.logger.WithField("id", s.id).Info("maze reset")
	return nil
}

// Stats returns the per-algorithm metrics.
func (s *MazeSession) Stats() (Stats, error) {
	s.RLock()
	defer s.RUnlock()

	if s.maze == nil {
		return Stats{}, ErrNoMaze
	}
	return s.stats, nil
}

func (s *MazeSession) inLimits(d int) bool {
	return d >= s.limits.MinDimension && d <= s.limits.MaxDimension
}

// snapshot copies the current maze. Callers hold the lock.
func (s *MazeSession) snapshot() *Snapshot {
	return &Snapshot{
		ID:          s.id,
		Width:       s.maze.Width(),
		Height:      s.maze.Height(),
		ExtraCycles: s.extraCycles,
		Cells:       s.maze.Grid(),
		Removals:    s.maze.RemovalLog(),
		Rendered:    s.maze.String(),
		GeneratedAt: s.generatedAt,
	}
}

func (s *MazeSession) record(alg pathfinder.Algorithm, steps int, d time.Duration) {
	st := &s.stats.BFS
	if alg == pathfinder.DFS {
		st = &s.stats.DFS
	}
	st.Runs++
	st.Steps = steps
	st.Duration = d
}

func (s *MazeSession) resetStats() {
	blank := AlgorithmStats{TimeComplexity: timeComplexity, SpaceComplexity: spaceComplexity}
	s.stats = Stats{BFS: blank, DFS: blank}
}
