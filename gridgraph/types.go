package gridgraph

// Marker is the content of a single grid cell: either Obstacle or a
// traversal cost >= 1. The cost is charged when a path enters the cell.
type Marker int

// Obstacle marks an impassable cell.
const Obstacle Marker = -1

// Walkable reports whether m is a traversable cost marker.
func (m Marker) Walkable() bool { return m != Obstacle }

// Cell identifies a grid position. Cells are comparable and ordered
// lexicographically on (X, Y) by Less.
type Cell struct {
	X, Y int
}

// Less reports whether c sorts before o: by X first, then by Y.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Neighbor is a walkable adjacent cell together with the cost to enter it.
type Neighbor struct {
	Cell Cell
	Cost int64
}

// offsets4 lists the four axis-aligned moves in the fixed order
// east, south, west, north. Neighbor lists follow this order.
var offsets4 = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is a rectangular, immutable 2D array of markers indexed [y][x].
type Grid struct {
	width, height int
	cells         [][]Marker
}

// Graph is the precomputed adjacency view of a Grid: for every walkable
// cell, its walkable neighbors in east, south, west, north order.
// It is read-only after BuildGraph and safe for concurrent readers.
type Graph struct {
	grid *Grid
	adj  map[Cell][]Neighbor
}
