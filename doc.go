// Package astarmaze finds the cheapest route through a weighted grid maze
// with A* and animates it.
//
// 🚀 What is astarmaze?
//
//	A small, deterministic path-finding toolkit that brings together:
//		• Grid primitives: cells, markers, obstacle-aware neighbor adapter
//		• A*: Manhattan heuristic, lazy frontier, reproducible tie-breaking
//		• Oracles: Dijkstra (weighted) and BFS (hop counts) for cross-checks
//		• Mazes: seeded random generation of obstacles and weighted cells
//		• Rendering: frame-by-frame route reveal exported as an animated GIF
//		• Metrics: Prometheus counters fed by search hooks
//
// ✨ Why astarmaze?
//
//   - Reproducible – the same seed, maze and endpoints give the same path
//   - Honest results – "goal blocked" and "no path" are outcomes, not errors
//   - Concurrent-friendly – graphs are immutable, searches own their state
//   - Hookable – OnExpand / OnPush observe every step of the search
//
// Packages:
//
//	gridgraph/ — Cell, Grid, Graph, connected components, text maze format
//	astar/     — Search, SearchBatch, Manhattan, path reconstruction
//	dijkstra/  — exhaustive single-source costs over a gridgraph.Graph
//	bfs/       — unweighted layers, parents and depths over a gridgraph.Graph
//	maze/      — seeded maze generation with validated Config
//	render/    — frames and animated GIF export
//	metrics/   — Prometheus collector for searches
//	logging/   — slog logger construction for the command
//	cmd/astarmaze — the CLI
//
// Quick ASCII example (# = obstacle, digits = cost to enter):
//
//	S  1  1  1
//	1  #  5  1
//	1  #  1  G
//
// The cheapest S→G route skirts the 5 along the top row: cost 5.
//
//	go install github.com/katalvlaran/astarmaze/cmd/astarmaze@latest
package astarmaze
