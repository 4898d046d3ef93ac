package maze

// PathExists reports whether goal can be reached from start through open walls.
// Off-grid positions are never reachable.
func (g *Grid) PathExists(start, goal CellPosition) bool {
	return g.FindPath(start, goal) != nil
}

// FindPath returns a shortest path of cells from start to goal inclusive, or nil if none exists.
func (g *Grid) FindPath(start, goal CellPosition) []*Cell {
	startCell, goalCell := g.cellAtPos(start), g.cellAtPos(goal)
	if startCell == nil || goalCell == nil {
		return nil
	}
	if startCell == goalCell {
		return []*Cell{startCell}
	}

	parent := map[*Cell]*Cell{startCell: nil}
	queue := []*Cell{startCell}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		if cell == goalCell {
			return walkBack(parent, goalCell)
		}

		for _, nb := range g.OpenNeighbors(cell) {
			if _, seen := parent[nb]; !seen {
				parent[nb] = cell
				queue = append(queue, nb)
			}
		}
	}

	return nil
}

// walkBack follows parent links from end to the root and returns the path root first.
func walkBack(parent map[*Cell]*Cell, end *Cell) []*Cell {
	var path []*Cell
	for cur := end; cur != nil; cur = parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
