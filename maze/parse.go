package maze

import "strings"

// Text format markers.
const (
	markerStart = 'A'
	markerGoal  = 'B'
	markerOpen  = ' '
	markerWall  = '#'
)

// Parse reads a maze from its text representation: exactly one 'A'
// (start), exactly one 'B' (goal), spaces are open cells, and any
// other character is a wall. The maze width is the longest line; rows
// shorter than that are padded with open cells rather than rejected.
func Parse(contents string) (*Grid, error) {
	if strings.Count(contents, string(markerStart)) != 1 {
		return nil, ErrNoStart
	}
	if strings.Count(contents, string(markerGoal)) != 1 {
		return nil, ErrNoGoal
	}

	lines := splitLines(contents)
	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if height == 0 || width == 0 {
		return nil, ErrEmptyMaze
	}

	var start, goal Cell
	walls := make([][]bool, height)
	for i, line := range lines {
		row := make([]bool, width)
		for j := 0; j < width; j++ {
			if j >= len(line) {
				continue // short row, pad as open
			}
			switch line[j] {
			case markerStart:
				start = Cell{Row: i, Col: j}
			case markerGoal:
				goal = Cell{Row: i, Col: j}
			case markerOpen:
			default:
				row[j] = true
			}
		}
		walls[i] = row
	}

	return NewGrid(walls, start, goal)
}

// splitLines splits on newlines without treating a trailing newline as
// an extra empty row.
func splitLines(contents string) []string {
	contents = strings.ReplaceAll(contents, "\r\n", "\n")
	contents = strings.TrimRight(contents, "\n")
	if contents == "" {
		return nil
	}
	return strings.Split(contents, "\n")
}
