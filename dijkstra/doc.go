// Package dijkstra provides a run-constrained variant of Dijkstra's
// shortest-path algorithm on cost grids (see package gridgraph).
//
// Overview:
//
//   - The walker starts on the top-left cell and must reach the bottom-right
//     cell. Entering a cell costs its value; the start cell is free.
//   - Moves are unit steps. After a run of at least MinRun steps in one
//     direction the walker may turn left or right; it may never continue a
//     run past MaxRun steps and never reverses.
//   - The goal only counts when reached with a run of at least MinRun.
//
// When to use:
//
//   - Vehicles that cannot turn on the spot or drive straight forever
//     (the “crucible” puzzles: runs 1..3 and 4..10).
//   - Any grid search whose legal moves depend on the recent heading.
//
// Key features:
//
//   - Functional options: WithRunBounds, WithReturnPath.
//   - Deterministic tie-break on (cost, x, y, run, direction).
//   - Flat state tables sized W·H·4·(MaxRun+1); no per-state allocation
//     beyond heap entries.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = W·H·4·min(MaxRun, max(W,H)).
//   - Space: O(S) for the tables plus O(S) worst-case heap entries under the
//     “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *gridgraph.GridGraph.
//   - ErrBadRunBounds:
//     Returned if the bounds violate 1 ≤ MinRun ≤ MaxRun.
//   - ErrUnreachable:
//     Returned when no admissible walk ends on the goal. Callers treat it as
//     an absence of result. A 1×1 grid is unreachable by definition, since
//     no move (and so no run) is ever made.
//
// API reference:
//
//	func ShortestPath(gg *gridgraph.GridGraph, opts ...Option) (Result, error)
//	func MinCost(gg *gridgraph.GridGraph, minRun, maxRun int) (int64, error)
//
// Thread safety:
//
//   - A search only reads the grid; concurrent searches on one grid are safe.
package dijkstra
