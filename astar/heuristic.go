package astar

import "github.com/katalvlaran/astarmaze/gridgraph"

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|. It never overestimates the
// remaining cost on a 4-connected grid whose costs are all >= 1.
func Manhattan(a, b gridgraph.Cell) int64 {
	return int64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
