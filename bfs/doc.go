// Package bfs provides breadth-first search over a gridgraph.Graph.
//
// BFS ignores traversal costs and counts moves, so on a grid where every
// cell costs 1 its depths are exact shortest-path costs. It is used as an
// unweighted reference for weighted searches and for reachability checks.
//
// Features:
//
//   - OnVisit hook, called in visit order; its error aborts the walk.
//   - MaxDepth limiting.
//   - Context cancellation.
//
// Complexity: O(V + E) time and memory.
package bfs
