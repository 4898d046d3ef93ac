// Package search finds paths through generated mazes by walking the open-wall graph.
//
// Solvers differ only in frontier discipline: BFS uses a FIFO queue and returns a
// shortest path, DFS uses a LIFO stack and returns some path.
package search

import (
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// Graph is the read-only view of a maze a solver needs. *maze.Grid and *maze.Maze satisfy it.
type Graph interface {
	CellAt(x, y int) *maze.Cell
	OpenNeighbors(c *maze.Cell) []*maze.Cell
}

// Solver finds a path between two positions of a maze.
type Solver interface {
	// Name returns the short algorithm name ("bfs", "dfs").
	Name() string

	// Solve returns the path from start to goal inclusive, or nil if goal is unreachable
	// or either position is off the maze, together with the search metrics.
	Solve(g Graph, start, goal maze.CellPosition) ([]maze.CellPosition, Metrics)
}

// Metrics describes the work a single Solve call performed.
type Metrics struct {
	Found          bool          `json:"found"`
	PathLength     int           `json:"path_length"` // PathLength is the number of edges, -1 when not found.
	NodesExpanded  int           `json:"nodes_expanded"`
	NodesGenerated int           `json:"nodes_generated"`
	MaxFrontier    int           `json:"max_frontier"`
	Elapsed        time.Duration `json:"elapsed_ns"`
}

// ByName returns the solver registered under name, case-insensitively.
func ByName(name string) (Solver, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return BFS{}, nil
	case "dfs":
		return DFS{}, nil
	}
	return nil, ErrUnknownAlgorithm
}

// frontier holds discovered cells that are not yet expanded.
type frontier interface {
	push(*maze.Cell)
	pop() *maze.Cell
	len() int
}

// run drives a search with the given frontier discipline and collects metrics around it.
func run(g Graph, start, goal maze.CellPosition, f frontier) ([]maze.CellPosition, Metrics) {
	began := time.Now()
	metrics := Metrics{PathLength: -1}

	path := walk(g, start, goal, f, &metrics)
	if path != nil {
		metrics.Found = true
		metrics.PathLength = len(path) - 1
	}
	metrics.Elapsed = time.Since(began)
	return path, metrics
}

func walk(g Graph, start, goal maze.CellPosition, f frontier, metrics *Metrics) []maze.CellPosition {
	startCell := g.CellAt(start.X, start.Y)
	goalCell := g.CellAt(goal.X, goal.Y)
	if startCell == nil || goalCell == nil {
		return nil
	}

	parent := map[*maze.Cell]*maze.Cell{startCell: nil}
	f.push(startCell)
	metrics.MaxFrontier = 1

	for f.len() > 0 {
		cell := f.pop()
		metrics.NodesExpanded++
		if cell == goalCell {
			return reconstruct(parent, cell)
		}

		for _, nb := range g.OpenNeighbors(cell) {
			if _, seen := parent[nb]; seen {
				continue
			}
			parent[nb] = cell
			f.push(nb)
			metrics.NodesGenerated++
			metrics.MaxFrontier = max(metrics.MaxFrontier, f.len())
		}
	}

	return nil
}

// reconstruct follows parent pointers from end back to the start cell.
func reconstruct(parent map[*maze.Cell]*maze.Cell, end *maze.Cell) []maze.CellPosition {
	var path []maze.CellPosition
	for cur := end; cur != nil; cur = parent[cur] {
		path = append(path, cur.Pos())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
