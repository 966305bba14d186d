// Package service wires the search engine to its collaborators: the
// result cache, the solve-history repository, and the renderer.
package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

// Solver implements i.MazeSolver on top of the search engine.
type Solver struct {
	cache i.ResultCache
	repo  i.RecordRepo
}

// NewSolver creates a Solver. The cache may be nil, in which case
// every solve runs the search.
func NewSolver(cache i.ResultCache, repo i.RecordRepo) (*Solver, error) {
	if repo == nil {
		return nil, errors.New("solver requires a record repository")
	}
	return &Solver{
		cache: cache,
		repo:  repo,
	}, nil
}

// Solve parses the maze, runs the search (consulting the cache first),
// and persists a history record. An unsolvable maze is a legitimate
// outcome: its record is saved with Solvable false and returned along
// with search.ErrNoSolution. Malformed mazes and unknown strategies
// fail before any search work begins and are never recorded.
func (s *Solver) Solve(ctx context.Context, mazeText, strategyStr string) (*dmn.SolveRecord, *search.Result, error) {
	strategy, err := search.ParseStrategy(strategyStr)
	if err != nil {
		return nil, nil, err
	}
	grid, err := maze.Parse(mazeText)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing maze: %w", err)
	}

	result, err := s.cachedSolve(ctx, grid, mazeText, strategy)
	if err != nil && !errors.Is(err, search.ErrNoSolution) {
		return nil, nil, err
	}

	cfg := dmn.RecordConfig{
		Maze:     mazeText,
		Strategy: string(strategy),
	}
	if result != nil {
		cfg.Solvable = true
		cfg.PathLength = len(result.Actions)
		cfg.NumExplored = result.NumExplored
	}
	record, recordErr := dmn.NewSolveRecord(cfg)
	if recordErr != nil {
		return nil, nil, recordErr
	}
	if saveErr := s.repo.Save(record); saveErr != nil {
		return nil, nil, fmt.Errorf("saving solve record: %w", saveErr)
	}

	return record, result, err
}

// cachedSolve returns the search result for the grid, from the cache
// when possible. Cache failures are ignored: the search is the source
// of truth and always available.
func (s *Solver) cachedSolve(ctx context.Context, grid *maze.Grid, mazeText string, strategy search.Strategy) (*search.Result, error) {
	key := cacheKey(mazeText, strategy)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	result, err := search.Solve(grid, strategy)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, result)
	}
	return result, nil
}

// RenderSolve solves the maze and renders it as a PNG. When the maze
// has no solution the bare maze is rendered without overlays.
func (s *Solver) RenderSolve(ctx context.Context, mazeText, strategyStr string, showExplored bool) ([]byte, error) {
	grid, err := maze.Parse(mazeText)
	if err != nil {
		return nil, fmt.Errorf("parsing maze: %w", err)
	}

	var opts maze.RenderOptions
	_, result, err := s.Solve(ctx, mazeText, strategyStr)
	switch {
	case err == nil:
		opts.Solution = result.Cells
		if showExplored {
			opts.Explored = result.ExploredOrder
		}
	case errors.Is(err, search.ErrNoSolution):
		// render the maze itself
	default:
		return nil, err
	}

	var buf bytes.Buffer
	if err := maze.EncodePNG(&buf, grid, opts); err != nil {
		return nil, fmt.Errorf("encoding maze image: %w", err)
	}
	return buf.Bytes(), nil
}

// RandomMaze generates a random solvable maze and returns its text
// representation, ready to be fed back into Solve.
func (s *Solver) RandomMaze(width, height int) (string, error) {
	grid, err := maze.Generate(width, height)
	if err != nil {
		return "", err
	}
	return grid.String(), nil
}

// RecordByID retrieves one solve-history entry.
func (s *Solver) RecordByID(id uuid.UUID) (*dmn.SolveRecord, error) {
	return s.repo.ByID(id)
}

// RecentRecords retrieves the most recent solve-history entries.
func (s *Solver) RecentRecords(limit int64) ([]*dmn.SolveRecord, error) {
	return s.repo.Recent(limit)
}

// cacheKey derives a stable cache key from the maze text and strategy.
func cacheKey(mazeText string, strategy search.Strategy) string {
	sum := sha256.Sum256([]byte(string(strategy) + "\n" + mazeText))
	return "solve:" + hex.EncodeToString(sum[:])
}
