package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/google/uuid"
)

// MazeSolver runs searches over text mazes and keeps the solve history.
type MazeSolver interface {
	// Solve parses the maze text, runs the selected strategy, records
	// the outcome, and returns the record with the search result. For
	// an unsolvable maze the record is returned together with
	// search.ErrNoSolution and a nil result.
	Solve(ctx context.Context, mazeText, strategy string) (*dmn.SolveRecord, *search.Result, error)

	// RenderSolve solves the maze and renders it as a PNG, overlaying
	// the solution path and, optionally, the explored cells.
	RenderSolve(ctx context.Context, mazeText, strategy string, showExplored bool) ([]byte, error)

	// RandomMaze generates a random solvable maze of the given passage
	// dimensions and returns its text representation.
	RandomMaze(width, height int) (string, error)

	// RecordByID retrieves one solve-history entry.
	RecordByID(id uuid.UUID) (*dmn.SolveRecord, error)

	// RecentRecords retrieves the most recent solve-history entries.
	RecentRecords(limit int64) ([]*dmn.SolveRecord, error)
}
