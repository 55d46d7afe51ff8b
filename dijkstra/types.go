// Package dijkstra defines core types and configuration options
// for the run-constrained shortest-path search on cost grids.
//
// The search walks a gridgraph.GridGraph from the top-left cell to the
// bottom-right cell. Every move is a unit step; a straight run in one
// direction must last at least MinRun steps before the walker may turn and
// may never exceed MaxRun steps. Entering a cell costs its value.
//
// Complexity:
//
//	– Time:  O(S log S)   where S = W·H·4·min(MaxRun, max(W,H)) extended states
//	   • Each state is finalised at most once.
//	   • Each finalised state pushes at most three successors (forward, left, right).
//	– Space: O(S)
//	   • Flat best-cost, finalised and predecessor tables indexed by state.
//	   • O(S) heap entries in the worst case (lazy decrease-key).
//
// Options:
//
//	– MinRun:     shortest straight run allowed before a turn and at the goal.
//	– MaxRun:     longest straight run allowed.
//	– ReturnPath: if true, return the sequence of states of one optimal walk.
//
// Errors (sentinel):
//
//	– ErrNilGrid       if the provided grid pointer is nil.
//	– ErrBadRunBounds  if the bounds violate 1 ≤ MinRun ≤ MaxRun.
//	– ErrUnreachable   if no walk ends at the goal with a run ≥ MinRun.
//
// Example usage:
//
//	minRun, maxRun := UltraCrucibleRuns()
//	res, err := ShortestPath(gg, WithRunBounds(minRun, maxRun))
//	if errors.Is(err, ErrUnreachable) {
//	    // no answer for this grid
//	}
//	fmt.Println(res.Cost)
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpuzzle/gridgraph"
)

// Sentinel errors returned by the constrained Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadRunBounds indicates run bounds outside 1 ≤ MinRun ≤ MaxRun.
	ErrBadRunBounds = errors.New("dijkstra: run bounds must satisfy 1 <= MinRun <= MaxRun")

	// ErrUnreachable indicates that no admissible walk reaches the goal cell.
	// It is an absence of result, not a failure of the search.
	ErrUnreachable = errors.New("dijkstra: goal unreachable under run constraints")
)

// Run bounds of the two puzzle variants.
const (
	// CrucibleMinRun and CrucibleMaxRun bound the ordinary crucible.
	CrucibleMinRun = 1
	CrucibleMaxRun = 3

	// UltraMinRun and UltraMaxRun bound the ultra crucible.
	UltraMinRun = 4
	UltraMaxRun = 10
)

// CrucibleRuns returns (CrucibleMinRun, CrucibleMaxRun).
func CrucibleRuns() (minRun, maxRun int) { return CrucibleMinRun, CrucibleMaxRun }

// UltraCrucibleRuns returns (UltraMinRun, UltraMaxRun).
func UltraCrucibleRuns() (minRun, maxRun int) { return UltraMinRun, UltraMaxRun }

// State is a node of the extended search graph: the walker stands on
// (X, Y), arrived heading Dir, and has taken Run consecutive steps that way.
type State struct {
	X, Y int
	Dir  gridgraph.Direction
	Run  int
}

// String renders the state as "(x,y)Dir×run".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)%s×%d", s.X, s.Y, s.Dir, s.Run)
}

// Result is the outcome of a successful search.
//
// Cost – minimum total entry cost; the start cell is not counted.
// Goal – the finalised goal state that produced Cost.
// Path – states from the first move to Goal; nil unless ReturnPath was set.
type Result struct {
	Cost int64
	Goal State
	Path []State
}

// Options configures the constrained search.
//
// MinRun     – minimum straight run before turning and at the goal. Must be ≥ 1.
// MaxRun     – maximum straight run. Must be ≥ MinRun.
// ReturnPath – if true, Result.Path holds one optimal walk.
type Options struct {
	MinRun     int
	MaxRun     int
	ReturnPath bool
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithRunBounds sets MinRun and MaxRun. Invalid bounds are reported by
// ShortestPath as ErrBadRunBounds.
func WithRunBounds(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// WithReturnPath enables reconstruction of the optimal walk in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options for the ordinary crucible:
//   - MinRun:     CrucibleMinRun (1).
//   - MaxRun:     CrucibleMaxRun (3).
//   - ReturnPath: false.
func DefaultOptions() Options {
	return Options{
		MinRun:     CrucibleMinRun,
		MaxRun:     CrucibleMaxRun,
		ReturnPath: false,
	}
}
