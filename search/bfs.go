package search

import "github.com/beka-birhanu/vinom-maze/maze"

var _ Solver = BFS{}

// BFS is breadth-first search. Its paths have the minimum number of edges.
type BFS struct{}

// Name implements Solver.
func (BFS) Name() string { return "bfs" }

// Solve implements Solver.
func (BFS) Solve(g Graph, start, goal maze.CellPosition) ([]maze.CellPosition, Metrics) {
	return run(g, start, goal, &queue{})
}

// queue is a FIFO frontier.
type queue struct {
	cells []*maze.Cell
	head  int
}

func (q *queue) push(c *maze.Cell) { q.cells = append(q.cells, c) }

func (q *queue) pop() *maze.Cell {
	c := q.cells[q.head]
	q.cells[q.head] = nil
	q.head++
	return c
}

func (q *queue) len() int { return len(q.cells) - q.head }
