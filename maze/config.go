package maze

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// Sentinel errors for maze generation.
var (
	// ErrInvalidConfig wraps validation failures of Config.
	ErrInvalidConfig = errors.New("maze: invalid config")
	// ErrKeepClearOutOfBounds indicates a KeepClear cell outside the maze.
	ErrKeepClearOutOfBounds = errors.New("maze: keep-clear cell out of bounds")
)

// Default generation parameters.
const (
	DefaultWidth        = 50
	DefaultHeight       = 50
	DefaultObstacleProb = 0.2
	DefaultWeightedProb = 0.1
	DefaultSeed         = 42
	DefaultMinWeight    = 2
	DefaultMaxWeight    = 5
)

// Config describes a maze to generate. The yaml tags let the CLI load it
// from a configuration file.
type Config struct {
	Width        int     `yaml:"width" validate:"gt=0"`
	Height       int     `yaml:"height" validate:"gt=0"`
	ObstacleProb float64 `yaml:"obstacle_prob" validate:"gte=0,lte=1"`
	WeightedProb float64 `yaml:"weighted_prob" validate:"gte=0,lte=1"`
	MinWeight    int     `yaml:"min_weight" validate:"gte=2"`
	MaxWeight    int     `yaml:"max_weight" validate:"gtefield=MinWeight"`
	Seed         int64   `yaml:"seed"`
}

// DefaultConfig returns a 50×50 maze with 20% obstacles, 10% weighted
// cells costing 2..5, and seed 42.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		ObstacleProb: DefaultObstacleProb,
		WeightedProb: DefaultWeightedProb,
		MinWeight:    DefaultMinWeight,
		MaxWeight:    DefaultMaxWeight,
		Seed:         DefaultSeed,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Option adjusts a single Generate call.
type Option func(*genOptions)

type genOptions struct {
	keepClear []gridgraph.Cell
}

// KeepClear forces the given cells to be plain walkable cells (cost 1),
// typically the intended start and goal.
func KeepClear(cells ...gridgraph.Cell) Option {
	return func(o *genOptions) {
		o.keepClear = append(o.keepClear, cells...)
	}
}
