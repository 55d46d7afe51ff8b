// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvpuzzle.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCostRange indicates a cell cost outside [0, MaxCost].
	ErrCostRange = errors.New("gridgraph: cell cost out of range")
	// ErrBadDigit indicates a non-digit character in a digit grid.
	ErrBadDigit = errors.New("gridgraph: cell is not a decimal digit")
)

// Direction is one of the four axis-aligned headings. The numeric order
// (East, South, West, North) is clockwise, so Right is +1 and Left is -1.
type Direction uint8

const (
	// East moves toward larger x.
	East Direction = iota
	// South moves toward larger y.
	South
	// West moves toward smaller x.
	West
	// North moves toward smaller y.
	North
)

// NumDirections is the number of headings.
const NumDirections = 4

// directionOffsets holds the (dx, dy) unit step for each Direction.
var directionOffsets = [NumDirections][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Offset returns the unit step (dx, dy) of d.
func (d Direction) Offset() (dx, dy int) {
	o := directionOffsets[d&3]

	return o[0], o[1]
}

// Left returns the heading after a quarter turn counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) & 3 }

// Right returns the heading after a quarter turn clockwise.
func (d Direction) Right() Direction { return (d + 1) & 3 }

// String returns the compass letter of d.
func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case North:
		return "N"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// MaxCost is the largest accepted cell cost; costs are never negative.
	MaxCost int
}

// DefaultGridOptions returns a GridOptions accepting single-digit costs (MaxCost=9).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		MaxCost: 9,
	}
}

// GridGraph treats a 2D integer grid of entry costs as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the cost of entering (x, y).
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
}
