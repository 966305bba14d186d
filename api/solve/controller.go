// Package solveapi handles maze solving, generation, and solve history.
package solveapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultRandomWidth  = 10
	defaultRandomHeight = 10
	defaultRecentLimit  = 20
)

// SolveController manages maze solving operations.
type SolveController struct {
	solver i.MazeSolver
}

// NewSolveController initializes a SolveController.
func NewSolveController(solver i.MazeSolver) (*SolveController, error) {
	if solver == nil {
		return nil, errors.New("solve controller requires a maze solver")
	}
	return &SolveController{
		solver: solver,
	}, nil
}

// Register registers the maze and solve-history routes.
func (c *SolveController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/solve", c.solve)
		mazes.POST("/image", c.image)
		mazes.GET("/random", c.random)
	}

	solves := route.Group("/solves")
	{
		solves.GET("/", c.recent)
		solves.GET("/:ID", c.recordInfo)
	}
}

// badRequest reports whether the error is the caller's fault: a
// malformed maze or an unknown strategy.
func badRequest(err error) bool {
	return errors.Is(err, search.ErrUnknownStrategy) ||
		errors.Is(err, maze.ErrNoStart) ||
		errors.Is(err, maze.ErrNoGoal) ||
		errors.Is(err, maze.ErrEmptyMaze) ||
		errors.Is(err, maze.ErrCellOutOfRange)
}

// solve handles maze solve requests.
func (c *SolveController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, result, err := c.solver.Solve(ctx, request.Maze, request.Strategy)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, &SolveResponse{
			ID:            record.ID,
			Solvable:      true,
			Actions:       result.Actions,
			Cells:         result.Cells,
			NumExplored:   result.NumExplored,
			ExploredOrder: result.ExploredOrder,
		})
	case errors.Is(err, search.ErrNoSolution):
		// a maze without a path is a result, not a failure
		ctx.JSON(http.StatusOK, &SolveResponse{
			ID:       record.ID,
			Solvable: false,
		})
	case badRequest(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
	}
}

// image handles solve-and-render requests, responding with a PNG.
func (c *SolveController) image(ctx *gin.Context) {
	var request ImageRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := c.solver.RenderSolve(ctx, request.Maze, request.Strategy, request.ShowExplored)
	if err != nil {
		if badRequest(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering maze"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", data)
}

// random handles random maze generation requests.
func (c *SolveController) random(ctx *gin.Context) {
	width, err := queryInt(ctx, "width", defaultRandomWidth)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "width must be an integer"})
		return
	}
	height, err := queryInt(ctx, "height", defaultRandomHeight)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "height must be an integer"})
		return
	}

	mazeText, err := c.solver.RandomMaze(width, height)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &RandomMazeResponse{Maze: mazeText})
}

// recent retrieves the latest solve records.
func (c *SolveController) recent(ctx *gin.Context) {
	limit, err := queryInt(ctx, "limit", defaultRecentLimit)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	records, err := c.solver.RecentRecords(int64(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing solves"})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// recordInfo retrieves information about a specific solve.
func (c *SolveController) recordInfo(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := c.solver.RecordByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such solve"})
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// queryInt reads an optional integer query parameter.
func queryInt(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
