// Package gridgraph treats a rectangular 2D grid of entry costs as a graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of non-negative costs.
//   - Cells are vertices; unit steps East, South, West and North are edges.
//   - Entering a cell costs its value; leaving costs nothing.
//   - Direction carries the four headings with quarter-turn helpers, which
//     is what state-expanded searches (see package crucible) key on.
//
// Why:
//
//   - Heat-loss / terrain maps where moves are constrained by heading.
//   - Row-major indexing keeps per-cell tables as flat slices.
//
// Complexity:
//
//   - NewGridGraph, ParseDigits: O(W×H) time and memory.
//   - InBounds, Cost, Step, Index, Coordinate: O(1).
//
// Options:
//
//   - GridOptions.MaxCost: largest accepted cell cost (9 for digit grids).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCostRange: a cell cost is negative or above MaxCost.
//   - ErrBadDigit: ParseDigits met a non-digit character.
package gridgraph
