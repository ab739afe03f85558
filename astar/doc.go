// Package astar implements A* shortest-path search over weighted grid graphs.
//
// A* expands cells in increasing order of f = g + h, where g is the best
// known cost from the start and h is the Manhattan distance to the goal.
// With every traversal cost >= 1 the heuristic is admissible and
// consistent, so the first time the goal is popped its cost is optimal.
//
// Complexity:
//
//   - Time:  O(E log E) worst case, E = number of frontier pushes.
//   - Space: O(V + E); tables are maps filled lazily, so only the explored
//     part of the grid is paid for.
//
// Implementation notes:
//
//   - The frontier is a binary heap with lazy deletion: an improved cell is
//     pushed again and the outdated entry is skipped when popped.
//   - Ties on f are broken by cell order (X, then Y), which makes the
//     returned path identical across runs on identical input.
//   - Moving into a cell costs that cell's marker (destination-cost model).
//
// Outcomes:
//
//   - StatusFound:       Path runs from the cell after start to goal; Cost is its total.
//   - StatusUnreachable: goal is walkable but not connected to start; Cost is Inf.
//   - StatusGoalBlocked: goal is an obstacle, no search is run; Cost is Inf.
//   - StatusUnknown:     only alongside a non-nil error; Cost is Inf, Path nil.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        graph is nil.
//   - gridgraph.ErrInvalidCell: start out of bounds or blocked, goal out of bounds.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrCanceled:        the context passed via WithContext was done.
//   - ErrBudgetExceeded:  WithMaxExpansions limit reached before the goal.
//
// Example usage:
//
//	g, _ := gridgraph.FromInts(rows)
//	res, err := astar.Search(gridgraph.BuildGraph(g), start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res.Path, res.Cost)
//	}
package astar
