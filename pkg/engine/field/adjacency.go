package field

// BuildAdjacency binds every square to its neighbors.
// Neighbor lists are captured by value, so this must run again after any
// structural change: initial fill, reset and mine placement.
func (g *Grid) BuildAdjacency() {
	for idx := range g.squares {
		g.squares[idx].setNeighbors(g.neighborIndices(g.positionAt(idx)))
	}
}

// neighborIndices probes the eight directions in order and keeps those that
// fall inside the grid
func (g *Grid) neighborIndices(pos Position) []int {
	neighbors := make([]int, 0, 8)
	for _, dir := range AllDirections() {
		adj := pos.Step(dir)
		if !g.IsValidPosition(adj) {
			continue
		}
		neighbors = append(neighbors, g.index(adj))
	}
	return neighbors
}

// Neighbors returns the positions adjacent to pos in probe order:
// top-left, top, top-right, right, bottom-right, bottom, bottom-left, left.
func (g *Grid) Neighbors(pos Position) ([]Position, error) {
	if !g.IsValidPosition(pos) {
		return nil, invalidPosition(pos)
	}

	sq := &g.squares[g.index(pos)]
	result := make([]Position, 0, len(sq.neighbors))
	for _, n := range sq.neighbors {
		result = append(result, g.positionAt(n))
	}
	return result, nil
}

// AdjacentMines returns how many neighbors of pos would end the game
func (g *Grid) AdjacentMines(pos Position) (int, error) {
	if !g.IsValidPosition(pos) {
		return 0, invalidPosition(pos)
	}
	return g.gameOverNeighbors(g.index(pos)), nil
}

func (g *Grid) gameOverNeighbors(idx int) int {
	count := 0
	for _, n := range g.squares[idx].neighbors {
		if g.squares[n].IsGameOver() {
			count++
		}
	}
	return count
}
