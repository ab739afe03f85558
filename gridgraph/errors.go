package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonPositiveCost indicates a walkable cell whose cost is below 1.
	ErrNonPositiveCost = errors.New("gridgraph: cell cost must be >= 1 or Obstacle")

	// ErrInvalidCell is the umbrella error for cells that cannot take part in a search.
	ErrInvalidCell = errors.New("gridgraph: invalid cell")
	// ErrCellOutOfBounds indicates a cell outside [0,Width)×[0,Height). Wraps ErrInvalidCell.
	ErrCellOutOfBounds = fmt.Errorf("%w: out of bounds", ErrInvalidCell)
	// ErrCellBlocked indicates a cell marked Obstacle. Wraps ErrInvalidCell.
	ErrCellBlocked = fmt.Errorf("%w: obstacle", ErrInvalidCell)

	// ErrSyntax indicates an unparsable token in the text maze format.
	ErrSyntax = errors.New("gridgraph: syntax error")
)
