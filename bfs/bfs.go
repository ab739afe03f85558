package bfs

import (
	"fmt"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// BFS explores g breadth-first from start and returns the move counts,
// parents and visit order of every reachable cell (within MaxDepth).
//
// Errors: ErrNilGraph, ErrOptionViolation, ErrStartNotWalkable, the
// context error on cancellation, or the OnVisit error (wrapped). On a
// hook or context error the partial Result built so far is returned too.
func BFS(g *gridgraph.Graph, start gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartNotWalkable, start.X, start.Y)
	}

	n := g.Len()
	res := &Result{
		Order:  make([]gridgraph.Cell, 0, n),
		Depth:  map[gridgraph.Cell]int{start: 0},
		Parent: make(map[gridgraph.Cell]gridgraph.Cell, n),
	}
	// The queue is res.Order itself: cells are appended on discovery and
	// read back through head.
	res.Order = append(res.Order, start)
	for head := 0; head < len(res.Order); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		u := res.Order[head]
		du := res.Depth[u]
		if o.OnVisit != nil {
			if err := o.OnVisit(u, du); err != nil {
				res.Order = res.Order[:head+1]
				return res, fmt.Errorf("bfs: visit (%d,%d): %w", u.X, u.Y, err)
			}
		}
		if o.MaxDepth > 0 && du >= o.MaxDepth {
			continue
		}
		for _, nb := range g.Neighbors(u) {
			if _, seen := res.Depth[nb.Cell]; seen {
				continue
			}
			res.Depth[nb.Cell] = du + 1
			res.Parent[nb.Cell] = u
			res.Order = append(res.Order, nb.Cell)
		}
	}
	return res, nil
}
