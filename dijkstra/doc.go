// Package dijkstra provides an exact single-source shortest-path solver for
// gridgraph.Graph values.
//
// Overview:
//
//   - Dijkstra computes the minimum entry cost from one source cell to every
//     walkable cell in O((V + E) log V) time.
//   - It uses the same destination-cost model as package astar: moving into
//     a cell costs that cell's marker.
//   - Because it explores exhaustively and uses no heuristic, it serves as
//     an independent optimality check for A* results.
//
// Key features:
//
//   - Functional options: Source, WithReturnPath, WithMaxDistance.
//   - ReturnPath: returns the predecessor map so individual paths can be rebuilt.
//   - MaxDistance: stops exploring beyond a cost cap.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy decrease-key.
package dijkstra
