// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, the destination-cost model, MaxDistance
// and predecessor reconstruction on small grids.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/astarmaze/dijkstra"
	"github.com/katalvlaran/astarmaze/gridgraph"
)

func mustGraph(t *testing.T, rows [][]int) *gridgraph.Graph {
	t.Helper()
	g, err := gridgraph.FromInts(rows)
	if err != nil {
		t.Fatalf("FromInts: %v", err)
	}
	return gridgraph.BuildGraph(g)
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := mustGraph(t, [][]int{{1}})
	_, _, err := dijkstra.Dijkstra(g)
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(gridgraph.Cell{}))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_InvalidSource(t *testing.T) {
	g := mustGraph(t, [][]int{{1, -1}})
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(gridgraph.Cell{X: 1, Y: 0}))
	if !errors.Is(err, gridgraph.ErrCellBlocked) {
		t.Fatalf("Expected ErrCellBlocked, got %v", err)
	}
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(gridgraph.Cell{X: 0, Y: 4}))
	if !errors.Is(err, gridgraph.ErrCellOutOfBounds) {
		t.Fatalf("Expected ErrCellOutOfBounds, got %v", err)
	}
}

func TestDijkstra_NegativeMaxDistancePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxDistance")
		}
	}()
	dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: destination costs, obstacles, predecessors.
// ------------------------------------------------------------------------

func TestDijkstra_DestinationCosts(t *testing.T) {
	// Entering (1,0) costs 5, entering (0,1) costs 1, etc.
	//
	//	1 5
	//	1 1
	g := mustGraph(t, [][]int{
		{1, 5},
		{1, 1},
	})
	src := gridgraph.Cell{X: 0, Y: 0}
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	want := map[gridgraph.Cell]int64{
		{X: 0, Y: 0}: 0,
		{X: 1, Y: 0}: 5,
		{X: 0, Y: 1}: 1,
		{X: 1, Y: 1}: 2,
	}
	for c, w := range want {
		if got := dist[c]; got != w {
			t.Errorf("dist[%v] = %d; want %d", c, got, w)
		}
	}
	if prev[gridgraph.Cell{X: 1, Y: 1}] != (gridgraph.Cell{X: 0, Y: 1}) {
		t.Errorf("prev[(1,1)] = %v; want (0,1)", prev[gridgraph.Cell{X: 1, Y: 1}])
	}
	if _, ok := prev[src]; ok {
		t.Error("source must have no predecessor")
	}
}

func TestDijkstra_UnreachableAndNoPath(t *testing.T) {
	//	1 -1 1
	g := mustGraph(t, [][]int{{1, -1, 1}})
	src := gridgraph.Cell{X: 0, Y: 0}
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
	if got := dist[gridgraph.Cell{X: 2, Y: 0}]; got != dijkstra.Unreachable {
		t.Errorf("dist[(2,0)] = %d; want Unreachable", got)
	}
	if _, ok := dist[gridgraph.Cell{X: 1, Y: 0}]; ok {
		t.Error("obstacle cell must not appear in dist")
	}
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Corridor of unit cells: distances 0,1,2,3,4.
	g := mustGraph(t, [][]int{{1, 1, 1, 1, 1}})
	dist, _, err := dijkstra.Dijkstra(g,
		dijkstra.Source(gridgraph.Cell{X: 0, Y: 0}),
		dijkstra.WithMaxDistance(2),
	)
	if err != nil {
		t.Fatal(err)
	}
	if dist[gridgraph.Cell{X: 2, Y: 0}] != 2 {
		t.Errorf("dist[(2,0)] = %d; want 2", dist[gridgraph.Cell{X: 2, Y: 0}])
	}
	if dist[gridgraph.Cell{X: 3, Y: 0}] != dijkstra.Unreachable {
		t.Errorf("dist[(3,0)] = %d; want Unreachable beyond MaxDistance", dist[gridgraph.Cell{X: 3, Y: 0}])
	}
}

// ------------------------------------------------------------------------
// 3. PathTo
// ------------------------------------------------------------------------

func TestPathTo(t *testing.T) {
	g := mustGraph(t, [][]int{
		{1, 1, 1},
		{-1, -1, 1},
		{1, 1, 1},
	})
	src := gridgraph.Cell{X: 0, Y: 0}
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	path := dijkstra.PathTo(prev, src, gridgraph.Cell{X: 0, Y: 2})
	want := []gridgraph.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	if len(path) != len(want) {
		t.Fatalf("path = %v; want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v; want %v", path, want)
		}
	}

	if p := dijkstra.PathTo(prev, src, src); p == nil || len(p) != 0 {
		t.Errorf("PathTo(source) = %v; want empty slice", p)
	}
	if p := dijkstra.PathTo(prev, src, gridgraph.Cell{X: 9, Y: 9}); p != nil {
		t.Errorf("PathTo(unreached) = %v; want nil", p)
	}
}
