// Package metrics instruments A* searches with Prometheus collectors.
//
// A Collector feeds on two sources: the engine hooks returned by Options
// (per push and per expansion) and the final astar.Result passed to
// Observe. Collectors are registered on a caller-supplied Registerer so
// independent runs and tests never share global state.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/astarmaze/astar"
	"github.com/katalvlaran/astarmaze/gridgraph"
)

// StatusError labels searches that returned an error instead of a Result.
const StatusError = "error"

// Collector groups the search metrics. It is safe for concurrent use.
type Collector struct {
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	expansions prometheus.Counter
	pushes     prometheus.Counter
	cost       prometheus.Histogram
}

// NewCollector creates the search metrics and registers them on reg.
// A nil reg leaves them unregistered. Like promauto, it panics if the
// names are already registered on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		// searches counts finished searches by outcome
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "astar_searches_total",
			Help: "Total A* searches by outcome status",
		}, []string{"status"}),

		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "astar_expanded_nodes",
			Help:    "Cells expanded per A* search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),

		expansions: f.NewCounter(prometheus.CounterOpts{
			Name: "astar_expansions_total",
			Help: "Total cells expanded across all searches",
		}),

		pushes: f.NewCounter(prometheus.CounterOpts{
			Name: "astar_frontier_pushes_total",
			Help: "Total frontier insertions across all searches, duplicates included",
		}),

		cost: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "astar_path_cost",
			Help:    "Cost of found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
	}
}

// Options returns the engine hooks that feed the per-event counters.
// They replace any OnExpand/OnPush hooks given earlier in the option list.
func (c *Collector) Options() []astar.Option {
	return []astar.Option{
		astar.WithOnExpand(func(gridgraph.Cell, int64) { c.expansions.Inc() }),
		astar.WithOnPush(func(gridgraph.Cell, int64) { c.pushes.Inc() }),
	}
}

// Observe records the outcome of one finished search.
func (c *Collector) Observe(res astar.Result) {
	c.searches.WithLabelValues(res.Status.String()).Inc()
	c.expanded.Observe(float64(res.Expanded))
	if res.Found() {
		c.cost.Observe(float64(res.Cost))
	}
}

// Search runs astar.Search with the collector's hooks and records the
// result. Failed searches are counted under StatusError.
func (c *Collector) Search(g astar.Graph, start, goal gridgraph.Cell, opts ...astar.Option) (astar.Result, error) {
	all := append(append([]astar.Option{}, opts...), c.Options()...)
	res, err := astar.Search(g, start, goal, all...)
	if err != nil {
		c.searches.WithLabelValues(StatusError).Inc()
		return res, err
	}
	c.Observe(res)
	return res, nil
}

// WriteText dumps every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
