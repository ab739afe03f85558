package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/astarmaze/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string
	cfg        runConfig

	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: defaultRunConfig()}

	root := &cobra.Command{
		Use:   "astarmaze",
		Short: "Find and animate the cheapest route through a random weighted maze",
		Long: `astarmaze generates a seeded random maze of obstacles and weighted cells,
searches it with A* (Manhattan heuristic, 4-connected moves, entering a
cell costs its weight) and renders the route as an animated GIF.

Configuration is layered: built-in defaults, then --config YAML, then
any flag given explicitly on the command line.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", logging.FormatText, "log format: text or json")
	a.bindMazeFlags(pf)

	root.AddCommand(newRunCmd(a), newPrintCmd(a))
	return root
}

// bindMazeFlags registers the generator flags shared by run and print.
func (a *app) bindMazeFlags(fs *pflag.FlagSet) {
	m := &a.cfg.Maze
	fs.IntVar(&m.Width, "width", m.Width, "maze width in cells")
	fs.IntVar(&m.Height, "height", m.Height, "maze height in cells")
	fs.Float64Var(&m.ObstacleProb, "obstacles", m.ObstacleProb, "probability that a cell is an obstacle")
	fs.Float64Var(&m.WeightedProb, "weighted", m.WeightedProb, "probability that a free cell is weighted")
	fs.IntVar(&m.MinWeight, "min-weight", m.MinWeight, "lowest weighted-cell cost")
	fs.IntVar(&m.MaxWeight, "max-weight", m.MaxWeight, "highest weighted-cell cost")
	fs.Int64Var(&m.Seed, "seed", m.Seed, "random seed (0 selects the default seed)")
	fs.StringVar(&a.cfg.MazeFile, "maze", a.cfg.MazeFile, "load the maze from a text file instead of generating it")
}

// setup loads the config file, reapplies explicit flags over it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		// Flags set on the command line win over the file. Their values
		// live in a.cfg, which the file is about to overwrite.
		explicit := make(map[string]string)
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicit[f.Name] = f.Value.String()
		})
		if err := loadConfigFile(a.configPath, &a.cfg); err != nil {
			return err
		}
		for name, val := range explicit {
			if err := cmd.Flags().Set(name, val); err != nil {
				return fmt.Errorf("flag --%s: %w", name, err)
			}
		}
	}

	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log = logging.New(logging.Config{
		Level:   level,
		Format:  a.logFormat,
		Output:  a.stderr,
		Service: "astarmaze",
	}).With("run_id", uuid.NewString())
	return nil
}
