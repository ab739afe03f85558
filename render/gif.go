package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/astarmaze/gridgraph"
)

// gifDelayUnit is the time resolution of GIF frame delays.
const gifDelayUnit = 10 * time.Millisecond

// ExportGIF renders path on grid and writes it to w as an animated GIF.
// Every frame is shown for opts.FrameDelay and the animation loops forever.
func ExportGIF(w io.Writer, grid *gridgraph.Grid, start, goal gridgraph.Cell, path []gridgraph.Cell, opts Options) error {
	frames, err := Frames(grid, start, goal, path, opts)
	if err != nil {
		return err
	}

	pal := paletteFor(grid, opts.Palette)
	delay := int(opts.FrameDelay / gifDelayUnit)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i, f := range frames {
		p := image.NewPaletted(f.Bounds(), pal)
		draw.Draw(p, p.Rect, f, f.Bounds().Min, draw.Src)
		anim.Image[i] = p
		anim.Delay[i] = delay
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// WriteGIFFile is ExportGIF into the file at path, which is created or
// truncated. A partially written file is left in place on error.
func WriteGIFFile(name string, grid *gridgraph.Grid, start, goal gridgraph.Cell, path []gridgraph.Cell, opts Options) (err error) {
	// Validate before touching the filesystem.
	if grid == nil {
		return ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if err := checkBounds(grid, start, goal, path); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	return ExportGIF(f, grid, start, goal, path, opts)
}

// paletteFor lists every color a frame of grid can contain: the fixed
// palette entries plus one gray per distinct weighted cost.
func paletteFor(grid *gridgraph.Grid, p Palette) color.Palette {
	pal := color.Palette{}
	seen := make(map[color.RGBA]bool)
	add := func(c color.RGBA) {
		if !seen[c] {
			seen[c] = true
			pal = append(pal, c)
		}
	}
	for _, c := range []color.RGBA{p.Obstacle, p.Free, p.Path, p.Start, p.Goal} {
		add(c)
	}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if m := grid.At(gridgraph.Cell{X: x, Y: y}); m.Walkable() && m > 1 {
				add(Shade(int(m)))
			}
		}
	}
	return pal
}
