// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// extended state graph of a cost grid with straight-run constraints.
//
// A vertex of the extended graph is (x, y, direction, run). Plain cells are
// not enough: whether a move is legal depends on how the walker arrived.
// The algorithm otherwise follows the textbook form:
//
//   - A min-heap ordered by (cost, x, y, run, direction) holds candidate states.
//   - A popped state is finalised; its cost is optimal.
//   - A successor is pushed only when it strictly improves the best known
//     cost of its state.
//   - We use a “lazy” decrease-key strategy: duplicates stay in the heap and
//     stale entries are skipped when popped.
//   - The first finalised goal state with run ≥ MinRun is the answer.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpuzzle/gridgraph"
)

// ShortestPath returns the minimum total entry cost of a walk from (0,0) to
// (Width-1, Height-1) of gg whose straight runs last between MinRun and
// MaxRun steps and which arrives at the goal with a run of at least MinRun.
// The cost of the start cell is not counted.
//
// Returns:
//
//   - res: Cost, the finalised Goal state and, with WithReturnPath, the Path.
//   - err: ErrNilGrid, ErrBadRunBounds, or ErrUnreachable when no admissible
//     walk exists (a 1×1 grid included: no move, so no run, is ever made).
//
// Complexity:
//
//   - Time:  O(S log S), S = W·H·4·min(MaxRun, max(W,H)).
//   - Space: O(S)
func ShortestPath(gg *gridgraph.GridGraph, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if gg == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.MinRun < 1 || cfg.MinRun > cfg.MaxRun {
		return Result{}, fmt.Errorf("%w: MinRun=%d MaxRun=%d", ErrBadRunBounds, cfg.MinRun, cfg.MaxRun)
	}

	// 2) Allocate flat per-state tables.
	r := newRunner(gg, cfg)

	// 3) Seed and run the main loop.
	r.init()
	goal, ok := r.process()
	if !ok {
		return Result{}, fmt.Errorf("%w: %dx%d grid, runs [%d,%d]",
			ErrUnreachable, gg.Width, gg.Height, cfg.MinRun, cfg.MaxRun)
	}

	res := Result{
		Cost: r.dist[r.slot(goal)],
		Goal: goal,
	}
	if cfg.ReturnPath {
		res.Path = r.path(goal)
	}

	return res, nil
}

// MinCost is a shorthand for ShortestPath with the given run bounds that
// returns only the cost.
func MinCost(gg *gridgraph.GridGraph, minRun, maxRun int) (int64, error) {
	res, err := ShortestPath(gg, WithRunBounds(minRun, maxRun))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	gg      *gridgraph.GridGraph // The input grid; read-only.
	options Options              // Validated run bounds.
	runs    int                  // Run dimension of the tables, capped by the grid size.
	dist    []int64              // Best known cost per state slot.
	done    []bool               // Finalised flag per state slot.
	prev    []int                // Predecessor slot, -1 for seeds. Nil unless ReturnPath.
	pq      statePQ              // Min-heap of *stateItem.
}

func newRunner(gg *gridgraph.GridGraph, cfg Options) *runner {
	// No straight run can be longer than the grid's longer side.
	runs := min(cfg.MaxRun, max(gg.Width, gg.Height)) + 1
	n := gg.Size() * gridgraph.NumDirections * runs
	r := &runner{
		gg:      gg,
		options: cfg,
		runs:    runs,
		dist:    make([]int64, n),
		done:    make([]bool, n),
		pq:      make(statePQ, 0, 4*gg.Size()),
	}
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// slot maps a state to its index in the flat tables.
func (r *runner) slot(s State) int {
	return (r.gg.Index(s.X, s.Y)*gridgraph.NumDirections+int(s.Dir))*r.runs + s.Run
}

// stateAt inverts slot.
func (r *runner) stateAt(k int) State {
	run := k % r.runs
	k /= r.runs
	dir := gridgraph.Direction(k % gridgraph.NumDirections)
	x, y := r.gg.Coordinate(k / gridgraph.NumDirections)

	return State{X: x, Y: y, Dir: dir, Run: run}
}

// init pushes the two seed moves out of the start cell. There is no prior
// heading at (0,0), so East and South both begin a run of 1.
func (r *runner) init() {
	heap.Init(&r.pq)
	start := State{}
	for _, d := range []gridgraph.Direction{gridgraph.East, gridgraph.South} {
		r.advance(start, d, 1, 0, -1)
	}
}

// process is the core loop. It pops the cheapest state, skips stale entries,
// finalises the state and expands it, until the goal is finalised or the
// heap is exhausted.
func (r *runner) process() (State, bool) {
	goalX, goalY := r.gg.Width-1, r.gg.Height-1
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost item from the heap.
		item := heap.Pop(&r.pq).(*stateItem)
		k := r.slot(item.state)

		// 2) Skip entries superseded by a cheaper push or already finalised.
		if r.done[k] || item.cost > r.dist[k] {
			continue
		}

		// 3) Finalise.
		r.done[k] = true
		s := item.state
		if s.X == goalX && s.Y == goalY && s.Run >= r.options.MinRun {
			return s, true
		}

		// 4) Expand.
		r.relax(s, item.cost, k)
	}

	return State{}, false
}

// relax pushes the admissible successors of s: forward while the run is
// below MaxRun, and quarter turns once the run has reached MinRun.
func (r *runner) relax(s State, cost int64, from int) {
	if s.Run < r.options.MaxRun {
		r.advance(s, s.Dir, s.Run+1, cost, from)
	}
	if s.Run >= r.options.MinRun {
		r.advance(s, s.Dir.Left(), 1, cost, from)
		r.advance(s, s.Dir.Right(), 1, cost, from)
	}
}

// advance steps from s in direction d, landing with the given run length.
// Out-of-bounds targets are discarded; the target is pushed only when it
// strictly improves the best known cost of its state.
func (r *runner) advance(s State, d gridgraph.Direction, run int, cost int64, from int) {
	x, y, ok := r.gg.Step(s.X, s.Y, d)
	if !ok {
		return
	}
	next := State{X: x, Y: y, Dir: d, Run: run}
	k := r.slot(next)
	newCost := cost + int64(r.gg.Cost(x, y))
	if newCost >= r.dist[k] {
		return
	}
	r.dist[k] = newCost
	if r.prev != nil {
		r.prev[k] = from
	}
	heap.Push(&r.pq, &stateItem{state: next, cost: newCost})
}

// path walks the predecessor table back from goal to a seed state.
func (r *runner) path(goal State) []State {
	var rev []State
	for k := r.slot(goal); k >= 0; k = r.prev[k] {
		rev = append(rev, r.stateAt(k))
	}
	out := make([]State, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return out
}

// stateItem is a heap entry: a state and the cost at which it was pushed.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of *stateItem ordered by cost, then x, y, run and
// direction so that equal-cost pops are reproducible.
type statePQ []*stateItem

// Len, Less and Swap order stateItems for container/heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost with a deterministic secondary key.
func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.state.X != b.state.X {
		return a.state.X < b.state.X
	}
	if a.state.Y != b.state.Y {
		return a.state.Y < b.state.Y
	}
	if a.state.Run != b.state.Run {
		return a.state.Run < b.state.Run
	}

	return a.state.Dir < b.state.Dir
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a *stateItem for heap.Push.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop detaches the last item for heap.Pop and clears its slot.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
