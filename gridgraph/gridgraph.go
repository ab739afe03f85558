package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if markers has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrNonPositiveCost if a non-obstacle marker is below 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(markers [][]Marker) (*Grid, error) {
	if len(markers) == 0 || len(markers[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(markers), len(markers[0])
	for _, row := range markers {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]Marker, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]Marker, w)
		for x, m := range markers[y] {
			if m != Obstacle && m < 1 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has %d", ErrNonPositiveCost, x, y, m)
			}
			cells[y][x] = m
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// FromInts is a convenience wrapper around NewGrid for plain integer
// literals, where -1 denotes Obstacle.
func FromInts(values [][]int) (*Grid, error) {
	markers := make([][]Marker, len(values))
	for y, row := range values {
		markers[y] = make([]Marker, len(row))
		for x, v := range row {
			markers[y][x] = Marker(v)
		}
	}
	return NewGrid(markers)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the marker stored at c. The caller must ensure c is in bounds.
func (g *Grid) At(c Cell) Marker {
	return g.cells[c.Y][c.X]
}

// Walkable reports whether c is in bounds and not an obstacle.
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Y][c.X].Walkable()
}

// Contains reports whether c is a walkable cell; it lets a Grid serve
// directly as a lazily evaluated graph.
func (g *Grid) Contains(c Cell) bool { return g.Walkable(c) }

// Validate returns nil if c may be used as a search endpoint, otherwise
// ErrCellOutOfBounds or ErrCellBlocked (both wrap ErrInvalidCell).
func (g *Grid) Validate(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrCellOutOfBounds, c.X, c.Y, g.width, g.height)
	}
	if !g.cells[c.Y][c.X].Walkable() {
		return fmt.Errorf("%w: (%d,%d)", ErrCellBlocked, c.X, c.Y)
	}
	return nil
}

// Neighbors returns the walkable cells orthogonally adjacent to c, in
// east, south, west, north order, each paired with its own marker as the
// cost to enter it. An isolated cell yields an empty slice.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Neighbor {
	out := make([]Neighbor, 0, len(offsets4))
	for _, d := range offsets4 {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		m := g.cells[n.Y][n.X]
		if !m.Walkable() {
			continue
		}
		out = append(out, Neighbor{Cell: n, Cost: int64(m)})
	}
	return out
}

// Markers returns a deep copy of the underlying markers, indexed [y][x].
func (g *Grid) Markers() [][]Marker {
	out := make([][]Marker, g.height)
	for y := range g.cells {
		out[y] = make([]Marker, g.width)
		copy(out[y], g.cells[y])
	}
	return out
}

// WalkableCount returns the number of non-obstacle cells.
func (g *Grid) WalkableCount() int {
	n := 0
	for _, row := range g.cells {
		for _, m := range row {
			if m.Walkable() {
				n++
			}
		}
	}
	return n
}

// index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (g *Grid) coordinate(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}
