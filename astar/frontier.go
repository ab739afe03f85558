package astar

import "github.com/katalvlaran/astarmaze/gridgraph"

// entry is a frontier element. g is the cell's g-score at push time; an
// entry whose g exceeds the current best g of its cell is stale.
type entry struct {
	f    int64
	g    int64
	cell gridgraph.Cell
}

// frontier is a min-heap of *entry ordered by f, then by cell order.
// Improved cells are pushed again instead of decreased in place.
type frontier []*entry

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].cell.Less(pq[j].cell)
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
