package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// Dijkstra computes shortest distances from the source cell (Options.Source)
// to all walkable cells of g.
//
// Returns:
//
//   - dist: map from cell to minimum distance (Unreachable if not reachable).
//     Every walkable cell is a key.
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     Unreached cells and the source have no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be in bounds and walkable (gridgraph.ErrInvalidCell).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *gridgraph.Graph, opts ...Option) (map[gridgraph.Cell]int64, map[gridgraph.Cell]gridgraph.Cell, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if err := g.Validate(cfg.Source); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	V := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[gridgraph.Cell]int64, V),
		prev:    make(map[gridgraph.Cell]gridgraph.Cell, V),
		visited: make(map[gridgraph.Cell]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Graph                  // The input graph; read-only within Dijkstra.
	options Options                           // Configuration options.
	dist    map[gridgraph.Cell]int64          // Cell → current best distance from Source.
	prev    map[gridgraph.Cell]gridgraph.Cell // Cell → predecessor on the shortest path.
	visited map[gridgraph.Cell]bool           // Tracks if a cell's distance is finalized.
	pq      nodePQ                            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every walkable cell to Unreachable and pushes Source=0 into the heap.
func (r *runner) init() {
	grid := r.g.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := gridgraph.Cell{X: x, Y: y}
			if r.g.Contains(c) {
				r.dist[c] = Unreachable
			}
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its
// neighbors, until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each neighbor of u and records strictly shorter distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u gridgraph.Cell) {
	for _, n := range r.g.Neighbors(u) {
		newDist := r.dist[u] + n.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[n.Cell] {
			continue
		}
		r.dist[n.Cell] = newDist
		r.prev[n.Cell] = u
		heap.Push(&r.pq, &nodeItem{cell: n.Cell, dist: newDist})
	}
}

// PathTo rebuilds the route to target from a predecessor map returned with
// WithReturnPath, excluding the source. It returns nil if target was not
// reached and an empty slice if target is the source.
func PathTo(prev map[gridgraph.Cell]gridgraph.Cell, source, target gridgraph.Cell) []gridgraph.Cell {
	if target == source {
		return []gridgraph.Cell{}
	}
	var rev []gridgraph.Cell
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		rev = append(rev, cur)
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	cell gridgraph.Cell
	dist int64
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// We use the “lazy-decrease-key” approach: when we find a shorter distance to an existing cell,
// we push a new *nodeItem onto the heap. The outdated entry remains but is ignored when popped
// (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
