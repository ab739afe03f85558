package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// Frames renders the animation frames for path on grid.
//
// Frame 0 is the maze with start and goal highlighted. Frame i (1..len(path))
// additionally paints path[0..i-1]. The result therefore has len(path)+1
// frames, all of size Width*CellSize by Height*CellSize.
//
// path follows the search convention: it excludes start and ends at goal.
func Frames(grid *gridgraph.Grid, start, goal gridgraph.Cell, path []gridgraph.Cell, opts Options) ([]image.Image, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if err := checkBounds(grid, start, goal, path); err != nil {
		return nil, err
	}

	base := drawMaze(grid, opts)
	frames := make([]image.Image, 0, len(path)+1)
	for i := 0; i <= len(path); i++ {
		dc := gg.NewContextForImage(base)
		for _, c := range path[:i] {
			cellRect(dc, c, opts.CellSize)
			dc.SetColor(opts.Palette.Path)
			dc.Fill()
		}
		drawEndpoints(dc, start, goal, opts)
		frames = append(frames, dc.Image())
	}
	return frames, nil
}

// checkBounds rejects endpoints and path cells that fall outside grid.
func checkBounds(grid *gridgraph.Grid, start, goal gridgraph.Cell, path []gridgraph.Cell) error {
	if !grid.InBounds(start) {
		return fmt.Errorf("render: start (%d,%d): %w", start.X, start.Y, gridgraph.ErrCellOutOfBounds)
	}
	if !grid.InBounds(goal) {
		return fmt.Errorf("render: goal (%d,%d): %w", goal.X, goal.Y, gridgraph.ErrCellOutOfBounds)
	}
	for i, c := range path {
		if !grid.InBounds(c) {
			return fmt.Errorf("render: path[%d] (%d,%d): %w", i, c.X, c.Y, gridgraph.ErrCellOutOfBounds)
		}
	}
	return nil
}

// drawMaze rasterizes every cell of grid in its terrain color.
func drawMaze(grid *gridgraph.Grid, opts Options) image.Image {
	s := opts.CellSize
	dc := gg.NewContext(grid.Width()*s, grid.Height()*s)
	dc.SetColor(opts.Palette.Free)
	dc.Clear()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := gridgraph.Cell{X: x, Y: y}
			m := grid.At(c)
			if m == 1 {
				continue // background already free-colored
			}
			cellRect(dc, c, s)
			if m.Walkable() {
				dc.SetColor(Shade(int(m)))
			} else {
				dc.SetColor(opts.Palette.Obstacle)
			}
			dc.Fill()
		}
	}
	return dc.Image()
}

func drawEndpoints(dc *gg.Context, start, goal gridgraph.Cell, opts Options) {
	cellRect(dc, start, opts.CellSize)
	dc.SetColor(opts.Palette.Start)
	dc.Fill()
	cellRect(dc, goal, opts.CellSize)
	dc.SetColor(opts.Palette.Goal)
	dc.Fill()
}

// cellRect adds the square covering c to the current path of dc.
func cellRect(dc *gg.Context, c gridgraph.Cell, size int) {
	dc.DrawRectangle(float64(c.X*size), float64(c.Y*size), float64(size), float64(size))
}
