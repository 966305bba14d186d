package maze

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
)

// String renders the grid in the same text format Parse accepts:
// '#' for walls, 'A'/'B' for start/goal, spaces for open cells.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			c := Cell{Row: i, Col: j}
			switch {
			case g.walls[i][j]:
				b.WriteByte(markerWall)
			case c == g.start:
				b.WriteByte(markerStart)
			case c == g.goal:
				b.WriteByte(markerGoal)
			default:
				b.WriteByte(markerOpen)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderOptions controls PNG rendering. Solution and Explored are
// overlays; either may be nil. Zero CellSize and Border take the
// defaults.
type RenderOptions struct {
	Solution []Cell
	Explored []Cell
	CellSize int
	Border   int
}

const (
	defaultCellSize = 24
	defaultBorder   = 1
)

var (
	colorWall     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorStart    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorGoal     = color.RGBA{R: 0, G: 171, B: 28, A: 255}
	colorSolution = color.RGBA{R: 220, G: 235, B: 113, A: 255}
	colorExplored = color.RGBA{R: 212, G: 97, B: 85, A: 255}
	colorOpen     = color.RGBA{R: 237, G: 240, B: 252, A: 255}
)

// EncodePNG writes the grid as a PNG image. Solution cells win over
// explored cells, and start/goal win over both.
func EncodePNG(w io.Writer, g *Grid, opts RenderOptions) error {
	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	border := opts.Border
	if border <= 0 {
		border = defaultBorder
	}

	onSolution := make(map[Cell]struct{}, len(opts.Solution))
	for _, c := range opts.Solution {
		onSolution[c] = struct{}{}
	}
	explored := make(map[Cell]struct{}, len(opts.Explored))
	for _, c := range opts.Explored {
		explored[c] = struct{}{}
	}

	img := image.NewRGBA(image.Rect(0, 0, g.width*cellSize, g.height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			c := Cell{Row: i, Col: j}
			var fill color.RGBA
			switch {
			case g.walls[i][j]:
				fill = colorWall
			case c == g.start:
				fill = colorStart
			case c == g.goal:
				fill = colorGoal
			default:
				if _, ok := onSolution[c]; ok {
					fill = colorSolution
				} else if _, ok := explored[c]; ok {
					fill = colorExplored
				} else {
					fill = colorOpen
				}
			}

			rect := image.Rect(
				j*cellSize+border,
				i*cellSize+border,
				(j+1)*cellSize-border,
				(i+1)*cellSize-border,
			)
			draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)
		}
	}

	return png.Encode(w, img)
}
