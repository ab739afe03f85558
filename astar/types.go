package astar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// Sentinel errors returned by Search and SearchBatch.
var (
	// ErrNilGraph indicates that a nil Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrCanceled wraps the context error when a search is interrupted.
	ErrCanceled = errors.New("astar: search canceled")

	// ErrBudgetExceeded indicates the expansion budget ran out before the goal was reached.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Inf is the cost reported when no path exists.
const Inf int64 = math.MaxInt64

// Graph is the read-only view Search needs. Both *gridgraph.Graph
// (precomputed adjacency) and *gridgraph.Grid (lazy adapter) satisfy it.
type Graph interface {
	// Neighbors lists walkable neighbors of a walkable cell with entry costs.
	Neighbors(c gridgraph.Cell) []gridgraph.Neighbor
	// Contains reports whether c is a walkable vertex.
	Contains(c gridgraph.Cell) bool
	// InBounds reports whether c lies inside the grid.
	InBounds(c gridgraph.Cell) bool
}

// Status classifies the outcome of a search.
type Status int

const (
	// StatusUnknown is the zero value, carried by results returned with an error.
	StatusUnknown Status = iota
	// StatusUnreachable means the frontier emptied without reaching the goal.
	StatusUnreachable
	// StatusFound means an optimal path was found.
	StatusFound
	// StatusGoalBlocked means the goal is an obstacle; no search was run.
	StatusGoalBlocked
)

// String returns a lower-case name used in logs and metric labels.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	case StatusGoalBlocked:
		return "goal_blocked"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result contains the outcome of a search.
type Result struct {
	// Path runs from the cell after start to goal inclusive. It is empty
	// when start == goal and nil when no path exists.
	Path []gridgraph.Cell
	// Cost is the total entry cost along Path, or Inf.
	Cost int64
	// Status tells found, unreachable and blocked goals apart.
	Status Status
	// Expanded counts non-stale frontier pops.
	Expanded int
	// Pushed counts frontier insertions, duplicates included.
	Pushed int
}

// failed is the Result returned alongside an error: no status, no path,
// infinite cost.
func failed() Result { return Result{Cost: Inf} }

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Status == StatusFound }

// Query is one start/goal pair for SearchBatch.
type Query struct {
	Start, Goal gridgraph.Cell
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and hooks for a single search.
type Options struct {
	// Ctx is checked at the top of every iteration of the main loop.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of expanded cells.
	MaxExpansions int

	// OnExpand is called for every non-stale pop with the cell and its g-score.
	OnExpand func(c gridgraph.Cell, g int64)

	// OnPush is called for every frontier insertion with the cell and its f-score.
	OnPush func(c gridgraph.Cell, f int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no budget
// and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation and deadlines.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expansions. n must be positive.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxExpansions must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook invoked on every expansion.
// In SearchBatch the hook is shared by all workers and must be safe for concurrent use.
func WithOnExpand(fn func(c gridgraph.Cell, g int64)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// WithOnPush registers a hook invoked on every frontier insertion.
// In SearchBatch the hook is shared by all workers and must be safe for concurrent use.
func WithOnPush(fn func(c gridgraph.Cell, f int64)) Option {
	return func(o *Options) { o.OnPush = fn }
}
