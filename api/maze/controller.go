package mazeapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/kruskal-maze/maze"
	"github.com/beka-birhanu/kruskal-maze/pathfinder"
	"github.com/beka-birhanu/kruskal-maze/replay"
	"github.com/beka-birhanu/kruskal-maze/service"
	"github.com/beka-birhanu/kruskal-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Config holds the dependencies of a MazeController.
type Config struct {
	Session            i.MazeSession
	GenerationInterval time.Duration // delay between wall-removal frames
	SearchInterval     time.Duration // delay between search frames
	Logger             logrus.FieldLogger
}

// MazeController serves the current maze, its solutions and their replays.
type MazeController struct {
	session            i.MazeSession
	generationInterval time.Duration
	searchInterval     time.Duration
	logger             logrus.FieldLogger
}

// NewMazeController initializes a MazeController.
func NewMazeController(c Config) (*MazeController, error) {
	if c.Session == nil {
		return nil, errors.New("maze session is required")
	}
	if c.GenerationInterval <= 0 || c.SearchInterval <= 0 {
		return nil, fmt.Errorf("replay intervals must be positive, got %s and %s", c.GenerationInterval, c.SearchInterval)
	}

	logger := c.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &MazeController{
		session:            c.Session,
		generationInterval: c.GenerationInterval,
		searchInterval:     c.SearchInterval,
		logger:             logger,
	}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.current)
		mazes.DELETE("", mc.reset)
		mazes.POST("/solve", mc.solve)
		mazes.GET("/solution", mc.solution)
		mazes.DELETE("/solution", mc.clearSolution)
		mazes.GET("/stats", mc.stats)
		mazes.GET("/replay/generation", mc.replayGeneration)
		mazes.GET("/replay/search", mc.replaySearch)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := mc.session.Generate(request.Width, request.Height, request.ExtraCycles)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(snap))
}

// current returns the current maze.
func (mc *MazeController) current(ctx *gin.Context) {
	snap, err := mc.session.Current()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(snap))
}

// reset restores every wall of the current maze.
func (mc *MazeController) reset(ctx *gin.Context) {
	if err := mc.session.Reset(); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// solve runs BFS or DFS on the current maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alg, err := pathfinder.ParseAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, err)
		return
	}

	sol, err := mc.session.Solve(request.ID, alg, request.Start, request.End)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(sol))
}

// solution returns the latest solution.
func (mc *MazeController) solution(ctx *gin.Context) {
	sol, err := mc.session.Solution()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSolutionResponse(sol))
}

// clearSolution drops the latest solution and its stats.
func (mc *MazeController) clearSolution(ctx *gin.Context) {
	if err := mc.session.ClearSolution(); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// stats returns per-algorithm metrics.
func (mc *MazeController) stats(ctx *gin.Context) {
	stats, err := mc.session.Stats()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newStatsResponse(stats))
}

// replayGeneration streams the wall-removal log as server-sent events.
func (mc *MazeController) replayGeneration(ctx *gin.Context) {
	snap, err := mc.session.Current()
	if err != nil {
		writeError(ctx, err)
		return
	}
	stream(ctx, mc.logger, "removal", snap.Removals, mc.generationInterval)
}

// replaySearch streams the explored cells, then the path, of the latest solution.
func (mc *MazeController) replaySearch(ctx *gin.Context) {
	sol, err := mc.session.Solution()
	if err != nil {
		writeError(ctx, err)
		return
	}
	stream(ctx, mc.logger, "step", searchSteps(sol), mc.searchInterval)
}

// stream emits one event per frame and a final "done" event when every frame
// was delivered. A client disconnect ends the stream early.
func stream[T any](ctx *gin.Context, logger logrus.FieldLogger, event string, frames []T, interval time.Duration) {
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	total := len(frames)
	err := replay.Play(ctx.Request.Context(), frames, interval, func(idx int, f T) error {
		ctx.SSEvent(event, Frame[T]{Index: idx, Total: total, Data: f})
		ctx.Writer.Flush()
		return nil
	})
	if err != nil {
		logger.WithError(err).WithField("event", event).Debug("replay stopped")
		return
	}

	ctx.SSEvent("done", gin.H{"frames": total})
	ctx.Writer.Flush()
}

// writeError maps domain errors to HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNoMaze), errors.Is(err, service.ErrNoSolution):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrStaleMaze):
		status = http.StatusConflict
	case errors.Is(err, service.ErrDimensionOutOfRange),
		errors.Is(err, service.ErrNegativeCycles),
		errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, pathfinder.ErrOutOfBounds),
		errors.Is(err, pathfinder.ErrUnknownAlgorithm):
		status = http.StatusBadRequest
	default:
		_ = ctx.Error(err)
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
