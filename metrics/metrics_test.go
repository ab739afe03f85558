package metrics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarmaze/astar"
	"github.com/katalvlaran/astarmaze/gridgraph"
	"github.com/katalvlaran/astarmaze/metrics"
)

func graph(t *testing.T, rows [][]int) *gridgraph.Graph {
	t.Helper()
	grid, err := gridgraph.FromInts(rows)
	require.NoError(t, err)
	return gridgraph.BuildGraph(grid)
}

// gatherCounter returns the value of the unlabeled counter called name.
func gatherCounter(t *testing.T, reg prometheus.Gatherer, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestCollector_Search(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	g := graph(t, [][]int{
		{1, 1, -1},
		{1, 1, -1},
		{-1, -1, 1},
	})

	found, err := c.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1})
	require.NoError(t, err)
	require.True(t, found.Found())

	unreachable, err := c.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	require.Equal(t, astar.StatusUnreachable, unreachable.Status)

	blocked, err := c.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0})
	require.NoError(t, err)
	require.Equal(t, astar.StatusGoalBlocked, blocked.Status)

	_, err = c.Search(g, gridgraph.Cell{X: 5, Y: 5}, gridgraph.Cell{X: 0, Y: 0})
	require.Error(t, err)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, count, "4 status series plus 4 unlabeled metrics")

	expected := `
# HELP astar_searches_total Total A* searches by outcome status
# TYPE astar_searches_total counter
astar_searches_total{status="error"} 1
astar_searches_total{status="found"} 1
astar_searches_total{status="goal_blocked"} 1
astar_searches_total{status="unreachable"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "astar_searches_total"))

	wantExpanded := found.Expanded + unreachable.Expanded + blocked.Expanded
	wantPushed := found.Pushed + unreachable.Pushed + blocked.Pushed
	assert.Equal(t, wantExpanded, int(gatherCounter(t, reg, "astar_expansions_total")))
	assert.Equal(t, wantPushed, int(gatherCounter(t, reg, "astar_frontier_pushes_total")))
}

func TestCollector_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.Observe(astar.Result{Status: astar.StatusFound, Cost: 7, Expanded: 12, Pushed: 20})
	c.Observe(astar.Result{Status: astar.StatusUnreachable, Cost: astar.Inf, Expanded: 3})

	expected := `
# HELP astar_path_cost Cost of found paths
# TYPE astar_path_cost histogram
astar_path_cost_bucket{le="1"} 0
astar_path_cost_bucket{le="2"} 0
astar_path_cost_bucket{le="4"} 0
astar_path_cost_bucket{le="8"} 1
astar_path_cost_bucket{le="16"} 1
astar_path_cost_bucket{le="32"} 1
astar_path_cost_bucket{le="64"} 1
astar_path_cost_bucket{le="128"} 1
astar_path_cost_bucket{le="256"} 1
astar_path_cost_bucket{le="512"} 1
astar_path_cost_bucket{le="1024"} 1
astar_path_cost_bucket{le="2048"} 1
astar_path_cost_bucket{le="4096"} 1
astar_path_cost_bucket{le="8192"} 1
astar_path_cost_bucket{le="+Inf"} 1
astar_path_cost_sum 7
astar_path_cost_count 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "astar_path_cost"))
}

func TestNewCollector_Unregistered(t *testing.T) {
	c := metrics.NewCollector(nil)
	assert.NotPanics(t, func() {
		c.Observe(astar.Result{Status: astar.StatusFound, Cost: 1, Expanded: 1})
	})
	assert.Len(t, c.Options(), 2)
}

func TestNewCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)
	assert.Panics(t, func() { metrics.NewCollector(reg) })
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.Observe(astar.Result{Status: astar.StatusFound, Cost: 4, Expanded: 5, Pushed: 9})

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "# TYPE astar_searches_total counter")
	assert.Contains(t, out, `astar_searches_total{status="found"} 1`)
	assert.Contains(t, out, "astar_expanded_nodes_count 1")
	assert.Contains(t, out, "astar_path_cost_sum 4")
}
