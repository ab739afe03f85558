package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/astarmaze/gridgraph"
	"github.com/katalvlaran/astarmaze/maze"
	"github.com/katalvlaran/astarmaze/render"
)

// errBadCell reports a malformed "x,y" coordinate.
var errBadCell = errors.New("cell must be written as x,y")

// runConfig is everything the run command needs. It is filled from
// defaults, then the YAML file, then explicitly set flags.
type runConfig struct {
	Maze     maze.Config `yaml:"maze"`
	MazeFile string      `yaml:"maze_file"`

	// Start and Goal are "x,y". An empty Goal means the bottom-right corner.
	Start     string `yaml:"start"`
	Goal      string `yaml:"goal"`
	ClearGoal bool   `yaml:"clear_goal"`

	Out          string `yaml:"out"`
	CellSize     int    `yaml:"cell_size"`
	FrameDelayMS int    `yaml:"frame_delay_ms"`

	MaxExpansions int  `yaml:"max_expansions"`
	Verify        bool `yaml:"verify"`
	Print         bool `yaml:"print"`
	Metrics       bool `yaml:"metrics"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Maze:         maze.DefaultConfig(),
		Start:        "0,0",
		Out:          "maze_path.gif",
		CellSize:     render.DefaultCellSize,
		FrameDelayMS: int(render.DefaultFrameDelay.Milliseconds()),
	}
}

// loadConfigFile overlays the YAML document at path onto cfg. Keys that
// are absent keep their current value; unknown keys are rejected.
func loadConfigFile(path string, cfg *runConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// parseCell parses "x,y" with optional surrounding spaces.
func parseCell(s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	return gridgraph.Cell{X: x, Y: y}, nil
}

// endpoints resolves the configured start and goal for a width x height maze.
func (c runConfig) endpoints(width, height int) (start, goal gridgraph.Cell, err error) {
	if start, err = parseCell(c.Start); err != nil {
		return start, goal, fmt.Errorf("start: %w", err)
	}
	if c.Goal == "" {
		return start, gridgraph.Cell{X: width - 1, Y: height - 1}, nil
	}
	if goal, err = parseCell(c.Goal); err != nil {
		return start, goal, fmt.Errorf("goal: %w", err)
	}
	return start, goal, nil
}

func (c runConfig) renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.CellSize = c.CellSize
	opts.FrameDelay = time.Duration(c.FrameDelayMS) * time.Millisecond
	return opts
}
