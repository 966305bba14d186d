package maze

import "fmt"

// Cell identifies a single grid position by row and column.
// It is a plain value type; equality is structural.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Action is one of the four orthogonal moves between adjacent cells.
type Action string

const (
	ActionUp    Action = "up"
	ActionDown  Action = "down"
	ActionLeft  Action = "left"
	ActionRight Action = "right"
)

// Step pairs an action with the cell it leads to.
type Step struct {
	Action Action
	Cell   Cell
}

// Manhattan returns the Manhattan distance |Δrow| + |Δcol| between two
// cells. On a 4-connected grid with unit edge costs it never
// overestimates the true remaining distance, which is what makes it a
// valid A* heuristic here.
func Manhattan(a, b Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
