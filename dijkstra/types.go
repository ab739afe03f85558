// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on grid graphs.
//
// Options:
//
//	– Source:      starting cell (must be set, in bounds and walkable).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; cells beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if no Source option was given.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– gridgraph.ErrInvalidCell if the source is out of bounds or an obstacle.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source cell was provided.
	ErrEmptySource = errors.New("dijkstra: source cell not set")

	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for cells not reachable from Source.
const Unreachable int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      gridgraph.Cell // The source cell
	ReturnPath  bool           // Whether to return the predecessor map
	MaxDistance int64          // Maximum distance to explore

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be called.
func Source(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no source, no predecessor map and no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
