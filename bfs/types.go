package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartNotWalkable is returned when the start cell is out of bounds
	// or an obstacle.
	ErrStartNotWalkable = errors.New("bfs: start cell is not walkable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS. Invalid values are recorded and reported as
// ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds the BFS settings.
type Options struct {
	Ctx context.Context

	// MaxDepth, if > 0, leaves cells deeper than MaxDepth undiscovered.
	MaxDepth int

	// OnVisit sees every cell as it leaves the queue, in Order. A non-nil
	// error aborts the traversal and is returned wrapped.
	OnVisit func(c gridgraph.Cell, depth int) error

	err error
}

// DefaultOptions returns a background context, no depth limit and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context checked once per dequeued cell.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the traversal; 0 means unbounded.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result is a breadth-first tree rooted at the start cell.
type Result struct {
	// Order lists visited cells layer by layer; within a layer, in
	// discovery order (neighbors E, S, W, N).
	Order []gridgraph.Cell
	// Depth is the number of moves from the start to each discovered cell.
	Depth map[gridgraph.Cell]int
	// Parent links every discovered cell except the start to its predecessor.
	Parent map[gridgraph.Cell]gridgraph.Cell
}

// PathTo returns the move sequence from the start cell to dest, both
// included. It fails if dest was not discovered.
func (r *Result) PathTo(dest gridgraph.Cell) ([]gridgraph.Cell, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to (%d,%d)", dest.X, dest.Y)
	}
	path := make([]gridgraph.Cell, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
