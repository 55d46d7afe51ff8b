// Package gridgraph provides utilities to treat a 2D grid of integer entry
// costs as a graph whose vertices are cells and whose edges are unit steps
// in the four axis-aligned directions.
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCostRange if any value lies outside [0, opts.MaxCost].
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		for x, v := range values[y] {
			if v < 0 || v > opts.MaxCost {
				return nil, fmt.Errorf("%w: (%d,%d)=%d, want [0,%d]", ErrCostRange, x, y, v, opts.MaxCost)
			}
		}
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:      w,
		Height:     h,
		CellValues: cells,
	}, nil
}

// ParseDigits reads a rectangular block of decimal digits, one row per line,
// and builds a GridGraph with DefaultGridOptions. Blank lines are skipped.
func ParseDigits(r io.Reader) (*GridGraph, error) {
	var values [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d col %d: %q", ErrBadDigit, line, col+1, ch)
			}
			row = append(row, int(ch-'0'))
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid: %w", err)
	}

	return NewGridGraph(values, DefaultGridOptions())
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Cost returns the cost of entering (x,y). The caller must check InBounds.
// Complexity: O(1).
func (gg *GridGraph) Cost(x, y int) int {
	return gg.CellValues[y][x]
}

// Step moves one cell from (x,y) in direction d.
// ok is false when the target lies outside the grid.
// Complexity: O(1).
func (gg *GridGraph) Step(x, y int, d Direction) (nx, ny int, ok bool) {
	dx, dy := d.Offset()
	nx, ny = x+dx, y+dy

	return nx, ny, gg.InBounds(nx, ny)
}

// Size returns the number of cells, Width×Height.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
