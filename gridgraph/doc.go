// Package gridgraph treats a 2D grid of cells as a weighted graph for
// shortest-path search.
//
// What:
//
//   - Grid wraps a rectangular [][]Marker; Obstacle cells are impassable,
//     every other cell holds a cost >= 1.
//   - Neighbors enumerates walkable orthogonal neighbors in the fixed order
//     east, south, west, north; the cost of a move is the destination's marker.
//   - BuildGraph precomputes every neighbor list once.
//   - ConnectedComponents finds walkable regions.
//   - Parse / WriteTo read and write a plain-text maze format.
//
// Why:
//
//   - Maze and terrain navigation with variable traversal cost.
//   - Deterministic neighbor order keeps search results reproducible.
//
// Complexity:
//
//   - NewGrid, BuildGraph, ConnectedComponents: O(W×H) time and memory.
//   - Grid.Neighbors, Graph.Neighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonPositiveCost: a non-obstacle cell has cost < 1.
//   - ErrInvalidCell, ErrCellOutOfBounds, ErrCellBlocked: unusable endpoints.
//   - ErrSyntax: malformed text maze.
package gridgraph
