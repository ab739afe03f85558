package main

import (
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print a generated maze in text form",
		Long: `Print the maze one row per line, cells separated by spaces:
"#" for an obstacle, otherwise the cost of entering the cell.
The output can be fed back with "astarmaze run --maze FILE".`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			grid, _, _, err := a.loadMaze()
			if err != nil {
				return err
			}
			_, err = grid.WriteTo(a.stdout)
			return err
		},
	}
}
