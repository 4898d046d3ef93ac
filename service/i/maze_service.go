package i

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
)

// MazeService generates mazes and solves them.
type MazeService interface {
	// Generate builds one maze. A zero seed means a time-seeded random source.
	Generate(opts *maze.Options, seed int64) (*maze.Maze, error)

	// GenerateMany builds one maze per size from a single random source.
	GenerateMany(sizes []maze.Size, opts *maze.Options, seed int64) ([]*maze.Maze, error)

	// Solve runs the named algorithm from start to goal.
	// A missing path is reported through the metrics, not as an error.
	Solve(m *maze.Maze, algorithm string, start, goal maze.CellPosition) ([]maze.CellPosition, search.Metrics, error)
}
