// Package maze synthesizes random weighted mazes for exercising grid search.
//
// Each cell, visited in row-major order, becomes an obstacle with
// probability ObstacleProb; otherwise it is a weighted cell with probability
// WeightedProb (cost drawn uniformly from [MinWeight, MaxWeight]) or a plain
// cell of cost 1.
//
// Determinism:
//
//   - All randomness flows from an explicit *rand.Rand built from Config.Seed.
//     No global random state is read or written.
//   - The same Config always yields the same grid.
//
// Errors:
//
//   - ErrInvalidConfig: Config failed validation.
//   - ErrKeepClearOutOfBounds: a KeepClear cell lies outside the maze.
package maze
