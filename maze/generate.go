package maze

import (
	"fmt"
	"math/rand"
)

const maxGenDimension = 50

// Generate builds a random solvable maze with Wilson's algorithm and
// returns it as a block grid: a width×height field of passage cells
// expanded to (2*height+1)×(2*width+1) wall/open cells, start at the
// top-left passage cell and goal at the bottom-right one.
func Generate(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > maxGenDimension || height > maxGenDimension {
		return nil, fmt.Errorf("invalid maze dimensions %dx%d", width, height)
	}
	if width*height < 2 {
		return nil, fmt.Errorf("maze of %dx%d cells has no room for start and goal", width, height)
	}

	g := &generator{width: width, height: height}
	g.carve()

	return NewGrid(g.walls, Cell{Row: 1, Col: 1}, Cell{Row: 2*height - 1, Col: 2*width - 1})
}

// generator carves passages on the block grid as the random walks
// land. Field coordinates are passage-cell coordinates; block
// coordinates are derived as 2*row+1, 2*col+1.
type generator struct {
	width  int
	height int
	walls  [][]bool
}

// carve runs Wilson's algorithm: loop-erased random walks from
// unvisited cells until they hit the visited region, then the recorded
// exits are opened as passages.
func (g *generator) carve() {
	g.walls = make([][]bool, 2*g.height+1)
	for i := range g.walls {
		g.walls[i] = make([]bool, 2*g.width+1)
		for j := range g.walls[i] {
			g.walls[i][j] = true
		}
	}
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			g.walls[2*r+1][2*c+1] = false
		}
	}

	visited := make(map[Cell]struct{})
	start := g.randomCell()
	visited[start] = struct{}{}

	for len(visited) < g.width*g.height {
		for cell, next := range g.randomWalk(visited) {
			g.openBetween(cell, next)
			visited[cell] = struct{}{}
		}
	}
}

// randomWalk walks randomly from an unvisited cell, remembering only
// the last exit taken from each cell, until it reaches a visited cell.
func (g *generator) randomWalk(visited map[Cell]struct{}) map[Cell]Cell {
	cell := g.randomUnvisitedCell(visited)
	visits := make(map[Cell]Cell)

	for {
		neighbors := g.fieldNeighbors(cell)
		next := neighbors[rand.Intn(len(neighbors))]
		visits[cell] = next
		if _, ok := visited[next]; ok {
			break
		}
		cell = next
	}
	return visits
}

func (g *generator) randomCell() Cell {
	return Cell{Row: rand.Intn(g.height), Col: rand.Intn(g.width)}
}

func (g *generator) randomUnvisitedCell(visited map[Cell]struct{}) Cell {
	for {
		cell := g.randomCell()
		if _, ok := visited[cell]; !ok {
			return cell
		}
	}
}

// fieldNeighbors returns the in-field orthogonal neighbors of a
// passage cell.
func (g *generator) fieldNeighbors(c Cell) []Cell {
	deltas := []Cell{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	result := make([]Cell, 0, 4)
	for _, d := range deltas {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if n.Row >= 0 && n.Row < g.height && n.Col >= 0 && n.Col < g.width {
			result = append(result, n)
		}
	}
	return result
}

// openBetween removes the block-grid wall separating two adjacent
// passage cells.
func (g *generator) openBetween(a, b Cell) {
	g.walls[a.Row+b.Row+1][a.Col+b.Col+1] = false
}
