package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	open := func() [][]bool {
		return [][]bool{
			{false, false, false},
			{false, false, false},
		}
	}

	t.Run("accepts a valid grid", func(t *testing.T) {
		g, err := NewGrid(open(), Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 2})
		assert.NoError(t, err)
		assert.Equal(t, 2, g.Height())
		assert.Equal(t, 3, g.Width())
	})

	t.Run("copies the wall table", func(t *testing.T) {
		walls := open()
		g, err := NewGrid(walls, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 2})
		assert.NoError(t, err)

		walls[1][1] = true
		assert.False(t, g.Wall(Cell{Row: 1, Col: 1}))
	})

	t.Run("rejects an empty grid", func(t *testing.T) {
		_, err := NewGrid(nil, Cell{}, Cell{})
		assert.ErrorIs(t, err, ErrEmptyMaze)
	})

	t.Run("rejects start or goal on a wall or out of bounds", func(t *testing.T) {
		walls := open()
		walls[0][0] = true
		_, err := NewGrid(walls, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 2})
		assert.ErrorIs(t, err, ErrCellOutOfRange)

		_, err = NewGrid(open(), Cell{Row: 5, Col: 5}, Cell{Row: 1, Col: 2})
		assert.ErrorIs(t, err, ErrCellOutOfRange)
	})

	t.Run("rejects identical start and goal", func(t *testing.T) {
		_, err := NewGrid(open(), Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 0})
		assert.Error(t, err)
	})
}

func TestNeighbors(t *testing.T) {
	g, err := Parse("A  \n # \n  B")
	assert.NoError(t, err)

	t.Run("interior cell lists up, down, left, right in order", func(t *testing.T) {
		open, err := Parse("A  \n   \n  B")
		assert.NoError(t, err)

		steps := open.Neighbors(Cell{Row: 1, Col: 1})
		assert.Equal(t, []Step{
			{ActionUp, Cell{Row: 0, Col: 1}},
			{ActionDown, Cell{Row: 2, Col: 1}},
			{ActionLeft, Cell{Row: 1, Col: 0}},
			{ActionRight, Cell{Row: 1, Col: 2}},
		}, steps)
	})

	t.Run("excludes out-of-bounds cells", func(t *testing.T) {
		steps := g.Neighbors(Cell{Row: 0, Col: 0})
		assert.Equal(t, []Step{
			{ActionDown, Cell{Row: 1, Col: 0}},
			{ActionRight, Cell{Row: 0, Col: 1}},
		}, steps)
	})

	t.Run("excludes wall cells", func(t *testing.T) {
		steps := g.Neighbors(Cell{Row: 1, Col: 0})
		// (1,1) is a wall: only up and down survive
		assert.Equal(t, []Step{
			{ActionUp, Cell{Row: 0, Col: 0}},
			{ActionDown, Cell{Row: 2, Col: 0}},
		}, steps)
	})
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want int
	}{
		{"same cell", Cell{Row: 2, Col: 2}, Cell{Row: 2, Col: 2}, 0},
		{"same row", Cell{Row: 1, Col: 0}, Cell{Row: 1, Col: 4}, 4},
		{"same column", Cell{Row: 5, Col: 3}, Cell{Row: 0, Col: 3}, 5},
		{"diagonal", Cell{Row: 0, Col: 0}, Cell{Row: 3, Col: 4}, 7},
		{"symmetric", Cell{Row: 3, Col: 4}, Cell{Row: 0, Col: 0}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Manhattan(tt.a, tt.b))
		})
	}
}
