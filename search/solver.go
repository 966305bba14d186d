/*
Package search implements graph search over a maze grid.

The engine is a generic expand-loop parameterized by a Frontier: FIFO
for breadth-first search, priority-ordered (f = g + h with Manhattan
distance) for A*. Both strategies find a shortest path on the
4-connected unit-cost grid; A* typically expands fewer nodes.

Solve runs a search to completion. Stepper exposes the same loop one
expansion at a time so callers can animate or inspect the search
without any concurrency.
*/
package search

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// Strategy selects the frontier driving the search.
type Strategy string

const (
	// StrategyBFS explores in breadth-first (FIFO) order.
	StrategyBFS Strategy = "bfs"
	// StrategyAStar explores in A* order with the Manhattan heuristic.
	StrategyAStar Strategy = "astar"
)

var (
	// ErrNoSolution reports that the search exhausted every cell
	// reachable from start without finding the goal. It is a
	// legitimate outcome, not a malfunction.
	ErrNoSolution = errors.New("no solution")

	// ErrUnknownStrategy reports an invalid strategy selector.
	ErrUnknownStrategy = errors.New(`unknown strategy: use "bfs" or "astar"`)
)

// ParseStrategy validates a strategy selector string.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBFS, StrategyAStar:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrUnknownStrategy, s)
	}
}

// Result is the outcome of a successful solve. Actions and Cells are
// parallel sequences in start-to-goal order; Cells excludes the start
// cell and ends at the goal. ExploredOrder lists states in the exact
// order they were dequeued, for visualization and diagnostics.
type Result struct {
	Actions       []maze.Action `json:"actions"`
	Cells         []maze.Cell   `json:"cells"`
	NumExplored   int           `json:"num_explored"`
	ExploredOrder []maze.Cell   `json:"explored_order"`
}

// Solve searches the grid with the given strategy and returns the
// solution, or ErrNoSolution if the goal is unreachable. It is pure:
// all solve state lives in the call, so a Grid may be shared across
// concurrent Solve calls.
func Solve(g *maze.Grid, strategy Strategy) (*Result, error) {
	stepper, err := NewStepper(g, strategy)
	if err != nil {
		return nil, err
	}
	for {
		snap := stepper.Step()
		if !snap.Done {
			continue
		}
		if snap.Found {
			return snap.Result, nil
		}
		return nil, ErrNoSolution
	}
}

// Snapshot is the observable state after one Step call.
type Snapshot struct {
	Current     maze.Cell // state dequeued by this step; zero once Done without Found
	NumExplored int
	Done        bool
	Found       bool
	Result      *Result // non-nil only when Found
}

// Stepper runs the search loop one node expansion per Step call. It is
// single-threaded; a host that wants to animate exploration calls Step
// and draws between calls.
type Stepper struct {
	grid     *maze.Grid
	frontier Frontier
	astar    bool

	explored      map[maze.Cell]struct{}
	exploredOrder []maze.Cell
	numExplored   int

	done   bool
	result *Result
}

// NewStepper seeds a search: the start node (cost 0) enters a fresh
// frontier, with priority g+h when the strategy is A*.
func NewStepper(g *maze.Grid, strategy Strategy) (*Stepper, error) {
	var frontier Frontier
	astar := false
	switch strategy {
	case StrategyBFS:
		frontier = NewQueueFrontier()
	case StrategyAStar:
		frontier = NewPriorityQueueFrontier()
		astar = true
	default:
		return nil, fmt.Errorf("%w (got %q)", ErrUnknownStrategy, strategy)
	}

	start := &Node{State: g.Start()}
	priority := NoPriority
	if astar {
		priority = start.Cost + maze.Manhattan(start.State, g.Goal())
	}
	frontier.Add(start, priority)

	return &Stepper{
		grid:     g,
		frontier: frontier,
		astar:    astar,
		explored: make(map[maze.Cell]struct{}),
	}, nil
}

// Step dequeues and expands one node. Once the snapshot reports Done,
// further calls return the same terminal snapshot.
func (s *Stepper) Step() Snapshot {
	if s.done {
		return Snapshot{
			NumExplored: s.numExplored,
			Done:        true,
			Found:       s.result != nil,
			Result:      s.result,
		}
	}

	if s.frontier.Empty() {
		s.done = true
		return Snapshot{NumExplored: s.numExplored, Done: true}
	}

	node := s.frontier.Remove()
	s.numExplored++
	s.explored[node.State] = struct{}{}
	s.exploredOrder = append(s.exploredOrder, node.State)

	if node.State == s.grid.Goal() {
		s.done = true
		s.result = s.buildResult(node)
		return Snapshot{
			Current:     node.State,
			NumExplored: s.numExplored,
			Done:        true,
			Found:       true,
			Result:      s.result,
		}
	}

	for _, step := range s.grid.Neighbors(node.State) {
		if _, ok := s.explored[step.Cell]; ok {
			continue
		}
		if s.frontier.ContainsState(step.Cell) {
			continue
		}
		child := &Node{
			State:  step.Cell,
			Parent: node,
			Action: step.Action,
			Cost:   node.Cost + 1,
		}
		priority := NoPriority
		if s.astar {
			priority = child.Cost + maze.Manhattan(child.State, s.grid.Goal())
		}
		s.frontier.Add(child, priority)
	}

	return Snapshot{Current: node.State, NumExplored: s.numExplored}
}

// ExploredOrder returns the states dequeued so far, oldest first. The
// returned slice is a copy.
func (s *Stepper) ExploredOrder() []maze.Cell {
	order := make([]maze.Cell, len(s.exploredOrder))
	copy(order, s.exploredOrder)
	return order
}

// buildResult walks the parent chain from the goal node back to the
// start, then reverses both sequences into start-to-goal order.
func (s *Stepper) buildResult(goal *Node) *Result {
	var actions []maze.Action
	var cells []maze.Cell
	for node := goal; node.Parent != nil; node = node.Parent {
		actions = append(actions, node.Action)
		cells = append(cells, node.State)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
		cells[i], cells[j] = cells[j], cells[i]
	}

	return &Result{
		Actions:       actions,
		Cells:         cells,
		NumExplored:   s.numExplored,
		ExploredOrder: s.ExploredOrder(),
	}
}
