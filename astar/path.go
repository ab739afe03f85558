package astar

import "github.com/katalvlaran/astarmaze/gridgraph"

// ReconstructPath follows cameFrom links from terminal back to the first
// cell without a predecessor, excludes that cell and returns the chain in
// forward order. A terminal without a predecessor yields an empty,
// non-nil slice.
//
// Complexity: O(L) for a chain of length L.
func ReconstructPath(cameFrom map[gridgraph.Cell]gridgraph.Cell, terminal gridgraph.Cell) []gridgraph.Cell {
	path := make([]gridgraph.Cell, 0)
	current := terminal
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, current)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
