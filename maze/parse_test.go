package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("locates start, goal, and walls", func(t *testing.T) {
		g, err := Parse("#A#\n# #\n#B#")
		assert.NoError(t, err)

		assert.Equal(t, 3, g.Height())
		assert.Equal(t, 3, g.Width())
		assert.Equal(t, Cell{Row: 0, Col: 1}, g.Start())
		assert.Equal(t, Cell{Row: 2, Col: 1}, g.Goal())
		assert.True(t, g.Wall(Cell{Row: 0, Col: 0}))
		assert.False(t, g.Wall(Cell{Row: 1, Col: 1}))
	})

	t.Run("any non-space marker is a wall", func(t *testing.T) {
		g, err := Parse("A*B\n...")
		assert.NoError(t, err)
		assert.True(t, g.Wall(Cell{Row: 0, Col: 1}))
		assert.True(t, g.Wall(Cell{Row: 1, Col: 0}))
	})

	t.Run("pads short rows as open cells", func(t *testing.T) {
		g, err := Parse("A#B\n#")
		assert.NoError(t, err)

		assert.Equal(t, 3, g.Width())
		assert.True(t, g.Wall(Cell{Row: 1, Col: 0}))
		assert.False(t, g.Wall(Cell{Row: 1, Col: 1}))
		assert.False(t, g.Wall(Cell{Row: 1, Col: 2}))
	})

	t.Run("ignores a trailing newline", func(t *testing.T) {
		g, err := Parse("AB\n")
		assert.NoError(t, err)
		assert.Equal(t, 1, g.Height())
	})

	t.Run("rejects a maze without exactly one start", func(t *testing.T) {
		_, err := Parse("  B")
		assert.ErrorIs(t, err, ErrNoStart)

		_, err = Parse("AAB")
		assert.ErrorIs(t, err, ErrNoStart)
	})

	t.Run("rejects a maze without exactly one goal", func(t *testing.T) {
		_, err := Parse("A  ")
		assert.ErrorIs(t, err, ErrNoGoal)

		_, err = Parse("ABB")
		assert.ErrorIs(t, err, ErrNoGoal)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		text := "#A#\n# #\n#B#\n"
		g, err := Parse(text)
		assert.NoError(t, err)
		assert.Equal(t, text, g.String())
	})
}
