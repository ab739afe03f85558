package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// Generate builds a maze from cfg using a fresh RNG seeded with cfg.Seed.
func Generate(cfg Config, opts ...Option) (*gridgraph.Grid, error) {
	return GenerateWithRand(cfg, NewRand(cfg.Seed), opts...)
}

// GenerateWithRand builds a maze drawing every random number from rng;
// cfg.Seed is ignored. Callers own rng and may reuse it for several mazes.
//
// Complexity: O(W×H).
func GenerateWithRand(cfg Config, rng *rand.Rand, opts ...Option) (*gridgraph.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o genOptions
	for _, opt := range opts {
		opt(&o)
	}

	markers := make([][]gridgraph.Marker, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		row := make([]gridgraph.Marker, cfg.Width)
		for x := 0; x < cfg.Width; x++ {
			row[x] = drawCell(cfg, rng)
		}
		markers[y] = row
	}

	for _, c := range o.keepClear {
		if c.X < 0 || c.X >= cfg.Width || c.Y < 0 || c.Y >= cfg.Height {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d maze", ErrKeepClearOutOfBounds, c.X, c.Y, cfg.Width, cfg.Height)
		}
		markers[c.Y][c.X] = 1
	}

	return gridgraph.NewGrid(markers)
}

// drawCell consumes one draw for the obstacle test and, for walkable
// cells, one more for the weighted test (plus one for the weight).
func drawCell(cfg Config, rng *rand.Rand) gridgraph.Marker {
	if rng.Float64() < cfg.ObstacleProb {
		return gridgraph.Obstacle
	}
	if rng.Float64() < cfg.WeightedProb {
		return gridgraph.Marker(cfg.MinWeight + rng.Intn(cfg.MaxWeight-cfg.MinWeight+1))
	}
	return 1
}
