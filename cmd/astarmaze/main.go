// Command astarmaze generates a random weighted maze, finds the cheapest
// route across it with A*, and exports the route as an animated GIF.
//
//	astarmaze run --seed 7 --out maze_path.gif
//	astarmaze run --config maze.yaml --verify --metrics
//	astarmaze print --width 20 --height 10
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
