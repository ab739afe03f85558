package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// Search finds a minimum-cost path from start to goal in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. start must be in bounds and walkable (gridgraph.ErrInvalidCell).
//  4. goal must be in bounds (gridgraph.ErrInvalidCell).
//
// A goal on an obstacle is not an error: Search returns StatusGoalBlocked
// without exploring anything. A walkable but disconnected goal yields
// StatusUnreachable. In both cases Cost is Inf and Path is nil.
//
// Search keeps all working state local to the call, so concurrent calls
// on the same read-only graph are safe.
func Search(g Graph, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	if g == nil {
		return failed(), ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return failed(), cfg.err
	}

	if !g.InBounds(start) {
		return failed(), fmt.Errorf("astar: start (%d,%d): %w", start.X, start.Y, gridgraph.ErrCellOutOfBounds)
	}
	if !g.Contains(start) {
		return failed(), fmt.Errorf("astar: start (%d,%d): %w", start.X, start.Y, gridgraph.ErrCellBlocked)
	}
	if !g.InBounds(goal) {
		return failed(), fmt.Errorf("astar: goal (%d,%d): %w", goal.X, goal.Y, gridgraph.ErrCellOutOfBounds)
	}
	if !g.Contains(goal) {
		return Result{Cost: Inf, Status: StatusGoalBlocked}, nil
	}

	r := &runner{
		g:        g,
		goal:     goal,
		options:  cfg,
		gScore:   make(map[gridgraph.Cell]int64),
		fScore:   make(map[gridgraph.Cell]int64),
		cameFrom: make(map[gridgraph.Cell]gridgraph.Cell),
		open:     make(frontier, 0, 64),
	}
	r.init(start)
	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        Graph
	goal     gridgraph.Cell
	options  Options
	gScore   map[gridgraph.Cell]int64 // absent means +infinity
	fScore   map[gridgraph.Cell]int64
	cameFrom map[gridgraph.Cell]gridgraph.Cell
	open     frontier
	res      Result
}

// init seeds the tables and the frontier with the start cell.
func (r *runner) init(start gridgraph.Cell) {
	heap.Init(&r.open)
	r.gScore[start] = 0
	r.push(start, 0)
}

// push records f for c and inserts a new frontier entry.
func (r *runner) push(c gridgraph.Cell, g int64) {
	f := g + Manhattan(c, r.goal)
	r.fScore[c] = f
	heap.Push(&r.open, &entry{f: f, g: g, cell: c})
	r.res.Pushed++
	if r.options.OnPush != nil {
		r.options.OnPush(c, f)
	}
}

// process is the main loop: pop the lowest (f, cell) entry, drop it if
// stale, stop at the goal, otherwise relax its neighbors.
func (r *runner) process() (Result, error) {
	ctx := r.options.Ctx
	for r.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return failed(), fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		item := heap.Pop(&r.open).(*entry)
		u := item.cell
		if item.f > r.fScore[u] {
			continue // stale: u was re-pushed with a lower f
		}

		r.res.Expanded++
		if r.options.OnExpand != nil {
			r.options.OnExpand(u, item.g)
		}

		if u == r.goal {
			r.res.Path = ReconstructPath(r.cameFrom, u)
			r.res.Cost = r.gScore[u]
			r.res.Status = StatusFound
			return r.res, nil
		}

		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			return failed(), fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.res.Expanded)
		}

		r.relax(u, item.g)
	}

	r.res.Cost = Inf
	r.res.Status = StatusUnreachable
	return r.res, nil
}

// relax tries to improve every neighbor of u through u. Only strict
// improvements are recorded; each one pushes a fresh frontier entry.
func (r *runner) relax(u gridgraph.Cell, gu int64) {
	for _, n := range r.g.Neighbors(u) {
		tentative := gu + n.Cost
		if best, ok := r.gScore[n.Cell]; ok && tentative >= best {
			continue
		}
		r.cameFrom[n.Cell] = u
		r.gScore[n.Cell] = tentative
		r.push(n.Cell, tentative)
	}
}
