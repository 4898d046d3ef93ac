package search

import "github.com/beka-birhanu/vinom-maze/maze"

var _ Solver = DFS{}

// DFS is depth-first search. It returns some path, not necessarily the shortest.
// Neighbors are pushed north, south, west, east, so the last of them is explored first.
type DFS struct{}

// Name implements Solver.
func (DFS) Name() string { return "dfs" }

// Solve implements Solver.
func (DFS) Solve(g Graph, start, goal maze.CellPosition) ([]maze.CellPosition, Metrics) {
	return run(g, start, goal, &stack{})
}

// stack is a LIFO frontier.
type stack []*maze.Cell

func (s *stack) push(c *maze.Cell) { *s = append(*s, c) }

func (s *stack) pop() *maze.Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

func (s *stack) len() int { return len(*s) }
