package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SearchBatch runs independent queries concurrently over one shared,
// read-only graph. Each query owns its own tables and frontier. At most
// limit searches run at once; limit <= 0 means no limit.
//
// Results are returned in query order. The first failing query cancels
// the others and its error is returned.
func SearchBatch(ctx context.Context, g Graph, queries []Query, limit int, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	results := make([]Result, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, q := range queries {
		eg.Go(func() error {
			qopts := make([]Option, 0, len(opts)+1)
			qopts = append(qopts, opts...)
			qopts = append(qopts, WithContext(egCtx))
			res, err := Search(g, q.Start, q.Goal, qopts...)
			if err != nil {
				return fmt.Errorf("astar: query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
