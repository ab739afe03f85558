package gridgraph

// BuildGraph precomputes the adjacency of every walkable cell of g, trading
// memory for avoiding repeated bounds and obstacle checks during search.
// Obstacle cells are not keys of the resulting Graph.
// Complexity: O(W×H) time and memory.
func BuildGraph(g *Grid) *Graph {
	adj := make(map[Cell][]Neighbor, g.WalkableCount())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if !g.cells[y][x].Walkable() {
				continue
			}
			adj[c] = g.Neighbors(c)
		}
	}
	return &Graph{grid: g, adj: adj}
}

// Grid returns the grid this graph was built from.
func (gr *Graph) Grid() *Grid { return gr.grid }

// Len returns the number of walkable cells (graph vertices).
func (gr *Graph) Len() int { return len(gr.adj) }

// Contains reports whether c is a vertex, i.e. a walkable cell.
func (gr *Graph) Contains(c Cell) bool {
	_, ok := gr.adj[c]
	return ok
}

// InBounds reports whether c lies inside the underlying grid.
func (gr *Graph) InBounds(c Cell) bool { return gr.grid.InBounds(c) }

// Validate reports whether c may be used as a search endpoint.
// See Grid.Validate.
func (gr *Graph) Validate(c Cell) error { return gr.grid.Validate(c) }

// Neighbors returns the precomputed neighbor list of c, or nil if c is
// not a vertex. The returned slice is shared and must not be modified.
func (gr *Graph) Neighbors(c Cell) []Neighbor {
	return gr.adj[c]
}
