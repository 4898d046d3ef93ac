package maze

import "fmt"

// Grid is a fixed-size rectangle of cells stored row-major at index x + y*width.
type Grid struct {
	width  int
	height int
	cells  []*Cell
}

// NewGrid creates a width x height grid with every wall standing.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]*Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[x+y*width] = &Cell{x: x, y: y, walls: AllWalls}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells returns the cells in row-major order. Callers must not modify the slice.
func (g *Grid) Cells() []*Cell { return g.cells }

// InBound reports whether (x, y) lies on the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns the cell at (x, y), or nil when the coordinate is off the grid.
func (g *Grid) CellAt(x, y int) *Cell {
	if !g.InBound(x, y) {
		return nil
	}
	return g.cells[x+y*g.width]
}

// cellAtPos is CellAt for a position.
func (g *Grid) cellAtPos(p CellPosition) *Cell {
	return g.CellAt(p.X, p.Y)
}

// Neighbors returns the existing cells north, south, west and east of c, in that order.
// Cells on borders or corners have fewer than four.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	result := make([]*Cell, 0, 4)
	for _, p := range [4]CellPosition{
		{c.x, c.y - 1},
		{c.x, c.y + 1},
		{c.x - 1, c.y},
		{c.x + 1, c.y},
	} {
		if n := g.cellAtPos(p); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// OpenNeighbors returns the neighbors of c that are not separated from it by a wall.
func (g *Grid) OpenNeighbors(c *Cell) []*Cell {
	result := make([]*Cell, 0, 4)
	for _, n := range g.Neighbors(c) {
		if !c.HasWall(c.wallTo(n)) {
			result = append(result, n)
		}
	}
	return result
}

// WallDirectionTo returns the side of c facing other.
// It panics if the cells are not exactly one step apart.
func (g *Grid) WallDirectionTo(c, other *Cell) Direction {
	return c.wallTo(other)
}

// Connect removes the wall between two adjacent cells on both sides.
// It panics if the cells are not adjacent or the wall is already down.
func (g *Grid) Connect(c, other *Cell) {
	dir := c.wallTo(other)
	if !c.HasWall(dir) || !other.HasWall(dir.Opposite()) {
		panic(fmt.Sprintf("maze: no wall to remove between %v and %v", c, other))
	}
	c.walls &^= dir
	other.walls &^= dir.Opposite()
}

// AddWall raises the wall between two adjacent cells on both sides.
// It panics if the cells are not adjacent.
func (g *Grid) AddWall(c, other *Cell) {
	dir := c.wallTo(other)
	c.walls |= dir
	other.walls |= dir.Opposite()
}

// OpenPairs counts adjacent cell pairs with no wall between them, each pair once.
func (g *Grid) OpenPairs() int {
	count := 0
	for _, c := range g.cells {
		if !c.HasEastWall() && c.x+1 < g.width {
			count++
		}
		if !c.HasSouthWall() && c.y+1 < g.height {
			count++
		}
	}
	return count
}

// reset raises every wall again.
func (g *Grid) reset() {
	for _, c := range g.cells {
		c.walls = AllWalls
	}
}
