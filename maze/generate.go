package maze

// Randomize knocks down walls to carve a random perfect maze with a randomized depth-first walk.
// The grid must have every wall standing.
func (g *Grid) Randomize(rng Rand) {
	var stack []*Cell
	cell := g.cells[rng.Intn(len(g.cells))]
	visited := 1

	for visited < len(g.cells) {
		var candidates []*Cell
		for _, n := range g.Neighbors(cell) {
			// Carving always removes a wall, so full cells are the unvisited ones.
			if n.IsFull() {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			cell = pop(&stack)
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.Connect(cell, next)
		stack = append(stack, cell)
		cell = next
		visited++
	}
}

// AddLoops removes each standing wall independently with probability loopProb.
// Every wall pair is visited once, from its west or north cell.
func (g *Grid) AddLoops(loopProb float64, rng Rand) {
	if loopProb <= 0 {
		return
	}

	for _, cell := range g.cells {
		for _, n := range g.Neighbors(cell) {
			if n.x < cell.x || n.y < cell.y {
				continue
			}
			if cell.HasWall(cell.wallTo(n)) && rng.Float64() < loopProb {
				g.Connect(cell, n)
			}
		}
	}
}

// BlockPath adds walls across shortest paths between start and goal until none remains
// or maxAttempts walls have been added. It returns true if goal is unreachable afterwards.
func (g *Grid) BlockPath(start, goal CellPosition, maxAttempts int, rng Rand) bool {
	for i := 0; i < maxAttempts; i++ {
		path := g.FindPath(start, goal)
		if path == nil {
			return true
		}
		if len(path) < 2 {
			return false
		}

		idx := rng.Intn(len(path) - 1)
		g.AddWall(path[idx], path[idx+1])
	}

	return !g.PathExists(start, goal)
}

// pop removes and returns the last element of a stack of cells.
func pop(s *[]*Cell) *Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
