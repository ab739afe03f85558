package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarmaze/astar"
	"github.com/katalvlaran/astarmaze/dijkstra"
	"github.com/katalvlaran/astarmaze/gridgraph"
	"github.com/katalvlaran/astarmaze/maze"
	"github.com/katalvlaran/astarmaze/metrics"
	"github.com/katalvlaran/astarmaze/render"
)

// errVerifyMismatch reports that A* and the exhaustive Dijkstra pass disagree.
var errVerifyMismatch = errors.New("verify: A* cost differs from Dijkstra")

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a maze, search it and export the route as a GIF",
		Long: `Generate (or load) a maze, search from --start to --goal and report:

  Goal is unreachable due to obstacles.   the goal cell is an obstacle
  Path not found.                         no route connects start and goal
  Path found with cost: N                 followed by the GIF export

The start cell is always kept clear of obstacles; the goal only with
--clear-goal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context())
		},
	}

	f := cmd.Flags()
	c := &a.cfg
	f.StringVar(&c.Start, "start", c.Start, "start cell as x,y")
	f.StringVar(&c.Goal, "goal", c.Goal, "goal cell as x,y (default: bottom-right corner)")
	f.BoolVar(&c.ClearGoal, "clear-goal", c.ClearGoal, "keep the goal cell free of obstacles when generating")
	f.StringVar(&c.Out, "out", c.Out, "GIF output path; empty disables export")
	f.IntVar(&c.CellSize, "cell-size", c.CellSize, "GIF cell size in pixels")
	f.IntVar(&c.FrameDelayMS, "frame-delay", c.FrameDelayMS, "GIF frame delay in milliseconds")
	f.IntVar(&c.MaxExpansions, "max-expansions", c.MaxExpansions, "abort the search after this many expansions (0: unlimited)")
	f.BoolVar(&c.Verify, "verify", c.Verify, "cross-check the cost with an exhaustive Dijkstra pass")
	f.BoolVar(&c.Print, "print", c.Print, "print the maze before searching")
	f.BoolVar(&c.Metrics, "metrics", c.Metrics, "dump Prometheus metrics to stderr when done")
	return cmd
}

// run executes one search as configured in a.cfg.
func (a *app) run(ctx context.Context) error {
	cfg := a.cfg
	grid, start, goal, err := a.loadMaze()
	if err != nil {
		return err
	}
	if cfg.Print {
		if _, err := grid.WriteTo(a.stdout); err != nil {
			return err
		}
	}

	g := gridgraph.BuildGraph(grid)
	a.log.Debug("graph built",
		"width", grid.Width(), "height", grid.Height(), "vertices", g.Len(),
		"start", start, "goal", goal)

	opts := []astar.Option{astar.WithContext(ctx)}
	if cfg.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(cfg.MaxExpansions))
	}

	var (
		res astar.Result
		reg *prometheus.Registry
	)
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		res, err = metrics.NewCollector(reg).Search(g, start, goal, opts...)
	} else {
		res, err = astar.Search(g, start, goal, opts...)
	}
	if err != nil {
		a.log.Error("search failed", "error", err)
		return err
	}
	a.log.Info("search finished",
		"status", res.Status.String(), "expanded", res.Expanded, "pushed", res.Pushed)

	switch res.Status {
	case astar.StatusGoalBlocked:
		fmt.Fprintln(a.stdout, "Goal is unreachable due to obstacles.")
	case astar.StatusUnreachable:
		fmt.Fprintln(a.stdout, "Path not found.")
	case astar.StatusFound:
		fmt.Fprintln(a.stdout, "Path found with cost:", res.Cost)
	}

	if cfg.Verify {
		if err := a.verify(g, start, goal, res); err != nil {
			return err
		}
	}

	if res.Found() && cfg.Out != "" {
		if err := a.export(grid, start, goal, res.Path); err != nil {
			return err
		}
	}

	if reg != nil {
		if err := metrics.WriteText(a.stderr, reg); err != nil {
			return err
		}
	}
	return nil
}

// loadMaze reads the maze file if one is configured, otherwise generates
// a maze with the start (and optionally the goal) kept clear.
func (a *app) loadMaze() (*gridgraph.Grid, gridgraph.Cell, gridgraph.Cell, error) {
	cfg := a.cfg
	var zero gridgraph.Cell

	if cfg.MazeFile != "" {
		f, err := os.Open(cfg.MazeFile)
		if err != nil {
			return nil, zero, zero, err
		}
		defer f.Close()
		grid, err := gridgraph.Parse(f)
		if err != nil {
			return nil, zero, zero, fmt.Errorf("%s: %w", cfg.MazeFile, err)
		}
		start, goal, err := cfg.endpoints(grid.Width(), grid.Height())
		if err != nil {
			return nil, zero, zero, err
		}
		a.log.Debug("maze loaded", "file", cfg.MazeFile)
		return grid, start, goal, nil
	}

	start, goal, err := cfg.endpoints(cfg.Maze.Width, cfg.Maze.Height)
	if err != nil {
		return nil, zero, zero, err
	}
	// Report bad endpoints in the cell taxonomy before the generator sees them.
	if err := cfg.Maze.Validate(); err != nil {
		return nil, zero, zero, err
	}
	if err := checkEndpoint("start", start, cfg.Maze.Width, cfg.Maze.Height); err != nil {
		return nil, zero, zero, err
	}
	if err := checkEndpoint("goal", goal, cfg.Maze.Width, cfg.Maze.Height); err != nil {
		return nil, zero, zero, err
	}
	keep := []gridgraph.Cell{start}
	if cfg.ClearGoal {
		keep = append(keep, goal)
	}
	grid, err := maze.Generate(cfg.Maze, maze.KeepClear(keep...))
	if err != nil {
		return nil, zero, zero, err
	}
	a.log.Debug("maze generated", "seed", cfg.Maze.Seed,
		"obstacle_prob", cfg.Maze.ObstacleProb, "weighted_prob", cfg.Maze.WeightedProb)
	return grid, start, goal, nil
}

// checkEndpoint rejects a cell outside a width x height maze.
func checkEndpoint(name string, c gridgraph.Cell, width, height int) error {
	if c.X < 0 || c.Y < 0 || c.X >= width || c.Y >= height {
		return fmt.Errorf("%s (%d,%d) in %dx%d maze: %w", name, c.X, c.Y, width, height, gridgraph.ErrCellOutOfBounds)
	}
	return nil
}

// verify recomputes the goal cost with Dijkstra and compares it with res.
func (a *app) verify(g *gridgraph.Graph, start, goal gridgraph.Cell, res astar.Result) error {
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(start))
	if err != nil {
		return err
	}
	want, ok := dist[goal]
	if !ok {
		want = dijkstra.Unreachable
	}
	if want != res.Cost {
		a.log.Error("verification failed", "astar_cost", res.Cost, "dijkstra_cost", want)
		return fmt.Errorf("%w: %d != %d", errVerifyMismatch, res.Cost, want)
	}
	a.log.Info("verification passed", "cost", want)
	return nil
}

// export writes the route animation, skipping the trivial start == goal route.
func (a *app) export(grid *gridgraph.Grid, start, goal gridgraph.Cell, path []gridgraph.Cell) error {
	err := render.WriteGIFFile(a.cfg.Out, grid, start, goal, path, a.cfg.renderOptions())
	if errors.Is(err, render.ErrEmptyPath) {
		a.log.Warn("no path to animate; skipping export")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "GIF saved at", a.cfg.Out)
	a.log.Info("gif exported", "path", a.cfg.Out, "frames", len(path)+1)
	return nil
}
