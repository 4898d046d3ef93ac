package maze

import "strings"

// Box drawing character for a wall piece joined to walls on the given sides.
var unicodeByConnections = map[Direction]rune{
	East | North | South | West: '┼',
	East | North | South:        '├',
	East | North | West:         '┴',
	East | South | West:         '┬',
	East | South:                '┌',
	East | North:                '└',
	East | West:                 '─',
	East:                        '╶',
	North | South | West:        '┤',
	North | South:               '│',
	North | West:                '┘',
	South | West:                '┐',
	South:                       '╷',
	North:                       '╵',
	West:                        '╴',
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return g.ascii(nil)
}

// RenderPath renders the grid as ASCII with the cells of path marked by '*'.
func RenderPath(g *Grid, path []CellPosition) string {
	marks := make(map[CellPosition]struct{}, len(path))
	for _, p := range path {
		marks[p] = struct{}{}
	}
	return g.ascii(marks)
}

func (g *Grid) ascii(marks map[CellPosition]struct{}) string {
	var sb strings.Builder

	// Top boundary
	sb.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for y := 0; y < g.height; y++ {
		// Cell rows
		sb.WriteString("|")
		for x := 0; x < g.width; x++ {
			cell := g.CellAt(x, y)
			if _, marked := marks[cell.Pos()]; marked {
				sb.WriteString(" * ")
			} else {
				sb.WriteString("   ")
			}

			if cell.HasEastWall() {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		// Wall rows
		sb.WriteString("+")
		for x := 0; x < g.width; x++ {
			if g.CellAt(x, y).HasSouthWall() {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Matrix returns a (2*height+1) x (2*width+1) block view of the grid where 'O' is wall
// and ' ' is open floor. Example 3x2:
//
//	OOOOOOO
//	O     O
//	OOO O O
//	O   O O
//	OOOOOOO
func Matrix(g *Grid) [][]rune {
	matrix := make([][]rune, g.height*2+1)
	for i := range matrix {
		matrix[i] = []rune(strings.Repeat("O", g.width*2+1))
	}

	for _, cell := range g.cells {
		x, y := cell.x*2+1, cell.y*2+1
		matrix[y][x] = ' '
		if !cell.HasNorthWall() && cell.y > 0 {
			matrix[y-1][x] = ' '
		}
		if !cell.HasWestWall() && cell.x > 0 {
			matrix[y][x-1] = ' '
		}
	}

	return matrix
}

// Unicode renders the grid with box drawing characters, doubled horizontally so the
// maze keeps its aspect ratio in a terminal.
func Unicode(g *Grid) string {
	// Widen every column, then drop the trailing duplicate of the east border.
	var matrix [][]rune
	for _, line := range Matrix(g) {
		wide := make([]rune, 0, len(line)*2)
		for _, ch := range line {
			wide = append(wide, ch, ch)
		}
		matrix = append(matrix, wide[:len(wide)-1])
	}

	wall := func(x, y int) bool {
		if y < 0 || y >= len(matrix) || x < 0 || x >= len(matrix[y]) {
			return false
		}
		return matrix[y][x] != ' '
	}

	// A wall block followed by floor is only half a wall after widening.
	for y, line := range matrix {
		for x := range line {
			if !wall(x, y) && wall(x-1, y) {
				matrix[y][x-1] = ' '
			}
		}
	}

	for y, line := range matrix {
		for x := range line {
			if !wall(x, y) {
				continue
			}

			var connections Direction
			if wall(x, y-1) {
				connections |= North
			}
			if wall(x, y+1) {
				connections |= South
			}
			if wall(x+1, y) {
				connections |= East
			}
			if wall(x-1, y) {
				connections |= West
			}

			if ch, ok := unicodeByConnections[connections]; ok {
				matrix[y][x] = ch
			} else {
				matrix[y][x] = '│'
			}
		}
	}

	var sb strings.Builder
	for _, line := range matrix {
		sb.WriteString(string(line))
		sb.WriteString("\n")
	}
	return sb.String()
}
