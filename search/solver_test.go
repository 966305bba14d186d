package search

import (
	"testing"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, text string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(text)
	assert.NoError(t, err)
	return g
}

// applyActions replays an action sequence from the start cell and
// returns the cells stepped onto, in order.
func applyActions(start maze.Cell, actions []maze.Action) []maze.Cell {
	cells := make([]maze.Cell, 0, len(actions))
	current := start
	for _, a := range actions {
		switch a {
		case maze.ActionUp:
			current.Row--
		case maze.ActionDown:
			current.Row++
		case maze.ActionLeft:
			current.Col--
		case maze.ActionRight:
			current.Col++
		}
		cells = append(cells, current)
	}
	return cells
}

const openGrid = "A  \n   \n  B"

const wallMaze = "#####B#\n" +
	"##### #\n" +
	"####  #\n" +
	"#### ##\n" +
	"     ##\n" +
	"A######"

func TestSolveBFS(t *testing.T) {
	t.Run("open 3x3 grid finds the deterministic shortest path", func(t *testing.T) {
		g := mustParse(t, openGrid)

		result, err := Solve(g, StrategyBFS)
		assert.NoError(t, err)
		// neighbor order up, down, left, right pins this path exactly
		assert.Equal(t, []maze.Action{maze.ActionDown, maze.ActionDown, maze.ActionRight, maze.ActionRight}, result.Actions)
		assert.Equal(t, []maze.Cell{{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, result.Cells)
		assert.Equal(t, 9, result.NumExplored)
	})

	t.Run("adjacent start and goal solve in one action", func(t *testing.T) {
		g := mustParse(t, "AB")

		result, err := Solve(g, StrategyBFS)
		assert.NoError(t, err)
		assert.Equal(t, []maze.Action{maze.ActionRight}, result.Actions)
		assert.Equal(t, []maze.Cell{g.Goal()}, result.Cells)
	})

	t.Run("enclosed goal yields no solution", func(t *testing.T) {
		g := mustParse(t, "A  \n###\n  B")

		result, err := Solve(g, StrategyBFS)
		assert.ErrorIs(t, err, ErrNoSolution)
		assert.Nil(t, result)
	})
}

func TestSolveAStar(t *testing.T) {
	t.Run("finds a path of the same length as BFS", func(t *testing.T) {
		for _, text := range []string{openGrid, wallMaze, "A   B"} {
			g := mustParse(t, text)

			bfs, err := Solve(g, StrategyBFS)
			assert.NoError(t, err)
			astar, err := Solve(g, StrategyAStar)
			assert.NoError(t, err)

			assert.Equal(t, len(bfs.Actions), len(astar.Actions))
		}
	})

	t.Run("never explores more nodes than BFS", func(t *testing.T) {
		for _, text := range []string{openGrid, wallMaze, "B  A "} {
			g := mustParse(t, text)

			bfs, err := Solve(g, StrategyBFS)
			assert.NoError(t, err)
			astar, err := Solve(g, StrategyAStar)
			assert.NoError(t, err)

			assert.LessOrEqual(t, astar.NumExplored, bfs.NumExplored)
		}
	})

	t.Run("heuristic prunes the wrong direction", func(t *testing.T) {
		// goal left of start; BFS also walks right, A* does not
		g := mustParse(t, "B  A ")

		bfs, err := Solve(g, StrategyBFS)
		assert.NoError(t, err)
		astar, err := Solve(g, StrategyAStar)
		assert.NoError(t, err)

		assert.Equal(t, 5, bfs.NumExplored)
		assert.Equal(t, 4, astar.NumExplored)
		assert.Equal(t, len(bfs.Actions), len(astar.Actions))
	})

	t.Run("single corridor explores the same cells as BFS", func(t *testing.T) {
		g := mustParse(t, "A   B")

		bfs, err := Solve(g, StrategyBFS)
		assert.NoError(t, err)
		astar, err := Solve(g, StrategyAStar)
		assert.NoError(t, err)

		assert.Equal(t, bfs.ExploredOrder, astar.ExploredOrder)
		assert.Equal(t, bfs.NumExplored, astar.NumExplored)
	})
}

func TestSolveUnknownStrategy(t *testing.T) {
	g := mustParse(t, "AB")

	_, err := Solve(g, Strategy("dfs"))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	for _, valid := range []string{"bfs", "astar"} {
		s, err := ParseStrategy(valid)
		assert.NoError(t, err)
		assert.Equal(t, Strategy(valid), s)
	}

	_, err := ParseStrategy("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestResultProperties(t *testing.T) {
	for _, strategy := range []Strategy{StrategyBFS, StrategyAStar} {
		t.Run(string(strategy), func(t *testing.T) {
			g := mustParse(t, wallMaze)

			result, err := Solve(g, strategy)
			assert.NoError(t, err)

			t.Run("actions replay onto the cell sequence and end at the goal", func(t *testing.T) {
				replayed := applyActions(g.Start(), result.Actions)
				assert.Equal(t, result.Cells, replayed)
				assert.Equal(t, g.Goal(), replayed[len(replayed)-1])
			})

			t.Run("explored order has no repeats and no walls", func(t *testing.T) {
				seen := make(map[maze.Cell]struct{})
				for _, c := range result.ExploredOrder {
					_, dup := seen[c]
					assert.False(t, dup, "cell %s explored twice", c)
					seen[c] = struct{}{}
					assert.False(t, g.Wall(c), "wall cell %s explored", c)
				}
				assert.Len(t, result.ExploredOrder, result.NumExplored)
			})
		})
	}
}

func TestStepper(t *testing.T) {
	t.Run("steps match a full solve", func(t *testing.T) {
		g := mustParse(t, openGrid)

		full, err := Solve(g, StrategyBFS)
		assert.NoError(t, err)

		stepper, err := NewStepper(g, StrategyBFS)
		assert.NoError(t, err)

		var dequeued []maze.Cell
		var last Snapshot
		for {
			last = stepper.Step()
			if last.Done {
				break
			}
			dequeued = append(dequeued, last.Current)
		}

		assert.True(t, last.Found)
		assert.Equal(t, full.Actions, last.Result.Actions)
		assert.Equal(t, full.ExploredOrder, stepper.ExploredOrder())
		// the final dequeue is the goal itself
		assert.Equal(t, full.ExploredOrder[:len(full.ExploredOrder)-1], dequeued)
	})

	t.Run("terminal snapshot is stable", func(t *testing.T) {
		g := mustParse(t, "AB")
		stepper, err := NewStepper(g, StrategyAStar)
		assert.NoError(t, err)

		var snap Snapshot
		for !snap.Done {
			snap = stepper.Step()
		}
		again := stepper.Step()
		assert.True(t, again.Done)
		assert.True(t, again.Found)
		assert.Equal(t, snap.Result, again.Result)
		assert.Equal(t, snap.NumExplored, again.NumExplored)
	})

	t.Run("exhaustion reports done without a result", func(t *testing.T) {
		g := mustParse(t, "A#B")
		stepper, err := NewStepper(g, StrategyBFS)
		assert.NoError(t, err)

		var snap Snapshot
		for !snap.Done {
			snap = stepper.Step()
		}
		assert.False(t, snap.Found)
		assert.Nil(t, snap.Result)
		assert.Equal(t, 1, snap.NumExplored)
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		g := mustParse(t, "AB")
		_, err := NewStepper(g, Strategy("random"))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}
