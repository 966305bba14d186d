/*
Package maze provides the grid model for rectangular wall mazes.

A Grid is an immutable description of a maze: dimensions, a per-cell
wall table, and a single start and goal cell. The package includes a
parser for the text maze format, a random generator based on Wilson's
algorithm, and ASCII/PNG rendering. A Grid is never mutated after
construction, so it is safe to share across independent solves.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStart and friends report malformed maze input. They are
	// raised at construction time; a Grid that exists is always valid.
	ErrNoStart        = errors.New("maze must have exactly one start point")
	ErrNoGoal         = errors.New("maze must have exactly one goal")
	ErrEmptyMaze      = errors.New("maze has no cells")
	ErrCellOutOfRange = errors.New("cell out of bounds or on a wall")
)

// Grid is an immutable rectangular maze: a wall table plus one start
// and one goal cell. Construct it with NewGrid, Parse, or Generate.
type Grid struct {
	height int
	width  int
	walls  [][]bool
	start  Cell
	goal   Cell
}

// NewGrid builds a Grid from a wall table and distinct start/goal
// cells. The wall table is copied, so the caller keeps ownership of
// its slice. Rows shorter than the widest row are padded with open
// cells.
func NewGrid(walls [][]bool, start, goal Cell) (*Grid, error) {
	height := len(walls)
	if height == 0 {
		return nil, ErrEmptyMaze
	}
	width := 0
	for _, row := range walls {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmptyMaze
	}

	table := make([][]bool, height)
	for i, row := range walls {
		table[i] = make([]bool, width)
		copy(table[i], row)
	}

	g := &Grid{height: height, width: width, walls: table, start: start, goal: goal}
	if !g.InBounds(start) || g.Wall(start) {
		return nil, fmt.Errorf("start %s: %w", start, ErrCellOutOfRange)
	}
	if !g.InBounds(goal) || g.Wall(goal) {
		return nil, fmt.Errorf("goal %s: %w", goal, ErrCellOutOfRange)
	}
	if start == goal {
		return nil, errors.New("start and goal must be distinct")
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Wall reports whether the cell is impassable. Out-of-bounds cells are
// treated as walls.
func (g *Grid) Wall(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.walls[c.Row][c.Col]
}

// Neighbors returns the passable orthogonal neighbors of a cell in the
// fixed order up, down, left, right. The order is part of the
// contract: it decides which of several equally short solutions a
// search finds, so it must stay deterministic. Wall and out-of-bounds
// candidates are silently skipped.
func (g *Grid) Neighbors(c Cell) []Step {
	candidates := []Step{
		{ActionUp, Cell{Row: c.Row - 1, Col: c.Col}},
		{ActionDown, Cell{Row: c.Row + 1, Col: c.Col}},
		{ActionLeft, Cell{Row: c.Row, Col: c.Col - 1}},
		{ActionRight, Cell{Row: c.Row, Col: c.Col + 1}},
	}

	result := make([]Step, 0, 4)
	for _, s := range candidates {
		if g.InBounds(s.Cell) && !g.walls[s.Cell.Row][s.Cell.Col] {
			result = append(result, s)
		}
	}
	return result
}
