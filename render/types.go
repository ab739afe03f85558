package render

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var (
	// ErrNilGrid indicates that no grid was supplied.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrEmptyPath indicates a nil or empty path; there is nothing to animate.
	ErrEmptyPath = errors.New("render: empty path")

	// ErrInvalidOptions indicates an unusable Options value.
	ErrInvalidOptions = errors.New("render: invalid options")
)

const (
	// DefaultCellSize is the edge length of one cell in pixels.
	DefaultCellSize = 10

	// DefaultFrameDelay is the display time of each animation frame.
	DefaultFrameDelay = 100 * time.Millisecond

	// minShade bounds how dark a weighted cell may get so it never reads as an obstacle.
	minShade = 80
	// shadeStep is the gray decrement per unit of cost above 1.
	shadeStep = 25
)

// Palette holds the fixed colors used by Frames. Weighted cells are not
// listed here: their gray is derived from the cost by Shade.
type Palette struct {
	Obstacle color.RGBA
	Free     color.RGBA
	Path     color.RGBA
	Start    color.RGBA
	Goal     color.RGBA
}

// DefaultPalette returns the black/white/blue/green/red scheme.
func DefaultPalette() Palette {
	return Palette{
		Obstacle: color.RGBA{A: 0xff},
		Free:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Path:     color.RGBA{B: 0xff, A: 0xff},
		Start:    color.RGBA{G: 0xff, A: 0xff},
		Goal:     color.RGBA{R: 0xff, A: 0xff},
	}
}

// Options configures rasterization and animation timing.
type Options struct {
	CellSize   int
	FrameDelay time.Duration
	Palette    Palette
}

// DefaultOptions returns 10px cells, 100ms frames and DefaultPalette.
func DefaultOptions() Options {
	return Options{
		CellSize:   DefaultCellSize,
		FrameDelay: DefaultFrameDelay,
		Palette:    DefaultPalette(),
	}
}

func (o Options) validate() error {
	if o.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidOptions, o.CellSize)
	}
	if o.FrameDelay < 0 {
		return fmt.Errorf("%w: frame delay must be non-negative, got %s", ErrInvalidOptions, o.FrameDelay)
	}
	return nil
}

// Shade returns the gray used for a walkable cell of the given cost.
// Cost 1 maps to white; every extra unit darkens by a fixed step down to
// a floor well above black.
func Shade(cost int) color.RGBA {
	v := 255 - shadeStep*(cost-1)
	if cost < 1 {
		v = 255
	}
	if v < minShade {
		v = minShade
	}
	y := uint8(v)
	return color.RGBA{R: y, G: y, B: y, A: 0xff}
}
