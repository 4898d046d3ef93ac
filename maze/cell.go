package maze

import "fmt"

// Direction is a set of wall sides. Single values name one side of a cell.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West

	// AllWalls is the wall set of a freshly constructed cell.
	AllWalls = North | South | East | West
)

// String returns the sorted side letters present in the set ("ensw" order).
func (d Direction) String() string {
	var out []byte
	for _, side := range []struct {
		dir Direction
		ch  byte
	}{{East, 'e'}, {North, 'n'}, {South, 's'}, {West, 'w'}} {
		if d&side.dir != 0 {
			out = append(out, side.ch)
		}
	}
	return string(out)
}

// Opposite returns the side facing d from the neighboring cell.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic(fmt.Sprintf("maze: opposite of non-single direction %q", d))
}

// CellPosition is the (X, Y) coordinate of a cell, X growing east and Y growing south.
type CellPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell represents a single cell in a maze grid: its position and the walls still standing.
// Walls are only changed through Grid.Connect and Grid.AddWall so both sides stay paired.
type Cell struct {
	x, y  int
	walls Direction
}

// X returns the column of the cell.
func (c *Cell) X() int { return c.x }

// Y returns the row of the cell.
func (c *Cell) Y() int { return c.y }

// Pos returns the position of the cell.
func (c *Cell) Pos() CellPosition {
	return CellPosition{X: c.x, Y: c.y}
}

// Walls returns the set of standing walls.
func (c *Cell) Walls() Direction {
	return c.walls
}

// HasWall returns true if the wall on side d is standing.
func (c *Cell) HasWall(d Direction) bool {
	return c.walls&d != 0
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c *Cell) HasNorthWall() bool { return c.HasWall(North) }

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c *Cell) HasSouthWall() bool { return c.HasWall(South) }

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c *Cell) HasEastWall() bool { return c.HasWall(East) }

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c *Cell) HasWestWall() bool { return c.HasWall(West) }

// IsFull returns true if all four walls are still standing.
func (c *Cell) IsFull() bool {
	return c.walls == AllWalls
}

func (c *Cell) String() string {
	return fmt.Sprintf("<%d, %d (%-4s)>", c.x, c.y, c.walls)
}

// wallTo returns the side of c facing other. The cells must be one step apart.
func (c *Cell) wallTo(other *Cell) Direction {
	dx, dy := other.x-c.x, other.y-c.y
	if abs(dx)+abs(dy) != 1 {
		panic(fmt.Sprintf("maze: cells %v and %v are not adjacent", c, other))
	}

	switch {
	case dy < 0:
		return North
	case dy > 0:
		return South
	case dx < 0:
		return West
	default:
		return East
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
