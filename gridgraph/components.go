package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells under
// 4-connectivity. Components are discovered in row-major scan order and
// each component lists its cells in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	labels, count := g.label()
	comps := make([][]Cell, count)
	for _, idx := range g.bfsOrder(labels) {
		c := g.coordinate(idx)
		comps[labels[idx]] = append(comps[labels[idx]], c)
	}
	return comps
}

// SameComponent reports whether a and b are both walkable and connected.
// It is a cheap reachability pre-check that does not consider costs.
func (g *Grid) SameComponent(a, b Cell) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	labels, _ := g.label()
	return labels[g.index(a)] == labels[g.index(b)]
}

// label assigns a component id to every walkable cell; obstacles get -1.
func (g *Grid) label() ([]int, int) {
	total := g.width * g.height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x].Walkable() {
				continue // obstacle
			}
			i0 := g.index(Cell{X: x, Y: y})
			if labels[i0] >= 0 {
				continue
			}
			// BFS to flood the component
			queue := []int{i0}
			labels[i0] = count
			for qi := 0; qi < len(queue); qi++ {
				u := g.coordinate(queue[qi])
				for _, n := range g.Neighbors(u) {
					vi := g.index(n.Cell)
					if labels[vi] < 0 {
						labels[vi] = count
						queue = append(queue, vi)
					}
				}
			}
			count++
		}
	}
	return labels, count
}

// bfsOrder replays the flood fill of label so that ConnectedComponents can
// report cells in discovery order.
func (g *Grid) bfsOrder(labels []int) []int {
	seen := make([]bool, len(labels))
	order := make([]int, 0, len(labels))
	for i0, l := range labels {
		if l < 0 || seen[i0] {
			continue
		}
		start := len(order)
		order = append(order, i0)
		seen[i0] = true
		for qi := start; qi < len(order); qi++ {
			for _, n := range g.Neighbors(g.coordinate(order[qi])) {
				vi := g.index(n.Cell)
				if !seen[vi] {
					seen[vi] = true
					order = append(order, vi)
				}
			}
		}
	}
	return order
}
