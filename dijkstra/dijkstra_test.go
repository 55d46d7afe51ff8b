// Package dijkstra_test contains unit tests for the run-constrained Dijkstra
// implementation: validation, the reference grids for both run bounds,
// unreachable goals and path reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/dijkstra"
	"github.com/katalvlaran/lvpuzzle/gridgraph"
)

const referenceGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const unluckyGrid = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustGrid(t *testing.T, text string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.ParseDigits(strings.NewReader(text))
	require.NoError(t, err)

	return gg
}

// walkCost sums entry costs along an explicit sequence of headings from (0,0).
func walkCost(t *testing.T, gg *gridgraph.GridGraph, moves []gridgraph.Direction) int64 {
	t.Helper()
	x, y := 0, 0
	var cost int64
	for _, d := range moves {
		var ok bool
		x, y, ok = gg.Step(x, y, d)
		require.True(t, ok, "explicit walk leaves the grid")
		cost += int64(gg.Cost(x, y))
	}
	require.Equal(t, gg.Width-1, x)
	require.Equal(t, gg.Height-1, y)

	return cost
}

// repeatRuns builds alternating East/South runs of the given length.
func repeatRuns(run, count int) []gridgraph.Direction {
	var moves []gridgraph.Direction
	d := gridgraph.East
	for c := 0; c < count; c++ {
		for i := 0; i < run; i++ {
			moves = append(moves, d)
		}
		if d == gridgraph.East {
			d = gridgraph.South
		} else {
			d = gridgraph.East
		}
	}

	return moves
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestShortestPath_NilGrid(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil)
	if err != dijkstra.ErrNilGrid {
		t.Fatalf("Expected ErrNilGrid, got %v", err)
	}
}

func TestShortestPath_BadRunBounds(t *testing.T) {
	gg := mustGrid(t, "12\n34\n")
	for _, b := range [][2]int{{0, 3}, {-1, 2}, {4, 3}} {
		_, err := dijkstra.ShortestPath(gg, dijkstra.WithRunBounds(b[0], b[1]))
		assert.ErrorIs(t, err, dijkstra.ErrBadRunBounds, "bounds %v", b)
	}
}

// ------------------------------------------------------------------------
// 2. Reference grids
// ------------------------------------------------------------------------

func TestShortestPath_Crucible(t *testing.T) {
	gg := mustGrid(t, referenceGrid)
	minRun, maxRun := dijkstra.CrucibleRuns()
	got, err := dijkstra.MinCost(gg, minRun, maxRun)
	require.NoError(t, err)
	assert.Equal(t, int64(102), got)

	// Default options are the ordinary crucible.
	res, err := dijkstra.ShortestPath(gg)
	require.NoError(t, err)
	assert.Equal(t, int64(102), res.Cost)
	assert.Nil(t, res.Path, "Path must be nil without WithReturnPath")
}

func TestShortestPath_UltraCrucible(t *testing.T) {
	gg := mustGrid(t, referenceGrid)
	minRun, maxRun := dijkstra.UltraCrucibleRuns()
	got, err := dijkstra.MinCost(gg, minRun, maxRun)
	require.NoError(t, err)
	assert.Equal(t, int64(94), got)

	got, err = dijkstra.MinCost(mustGrid(t, unluckyGrid), minRun, maxRun)
	require.NoError(t, err)
	assert.Equal(t, int64(71), got)
}

// TestShortestPath_Idempotent checks that repeated searches agree exactly.
func TestShortestPath_Idempotent(t *testing.T) {
	gg := mustGrid(t, referenceGrid)
	first, err := dijkstra.ShortestPath(gg, dijkstra.WithRunBounds(4, 10), dijkstra.WithReturnPath())
	require.NoError(t, err)
	second, err := dijkstra.ShortestPath(gg, dijkstra.WithRunBounds(4, 10), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestShortestPath_UpperBound compares the optimum with explicit admissible walks.
func TestShortestPath_UpperBound(t *testing.T) {
	gg := mustGrid(t, referenceGrid)

	staircase := walkCost(t, gg, repeatRuns(1, 24))
	got, err := dijkstra.MinCost(gg, 1, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, got, staircase)

	blocks := walkCost(t, gg, repeatRuns(4, 6))
	got, err = dijkstra.MinCost(gg, 4, 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, got, blocks)
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

func TestShortestPath_Unreachable(t *testing.T) {
	cases := []struct {
		name           string
		grid           string
		minRun, maxRun int
	}{
		{"SingleCell", "5\n", 1, 3},
		{"SingleCellUltra", "5\n", 4, 10},
		{"TooSmallForMinRun", "12\n34\n", 4, 10},
		{"RowLongerThanMaxRun", "11111\n", 1, 3},
		{"MinRunBeyondGrid", "12\n34\n", math.MaxInt / 2, math.MaxInt / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.MinCost(mustGrid(t, tc.grid), tc.minRun, tc.maxRun)
			if !errors.Is(err, dijkstra.ErrUnreachable) {
				t.Fatalf("Expected ErrUnreachable, got %v", err)
			}
		})
	}
}

// TestShortestPath_HugeMaxRun checks that a MaxRun far beyond the grid
// behaves like a MaxRun equal to the grid's longer side.
func TestShortestPath_HugeMaxRun(t *testing.T) {
	got, err := dijkstra.MinCost(mustGrid(t, "12\n34\n"), 1, math.MaxInt/2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)

	gg := mustGrid(t, referenceGrid)
	want, err := dijkstra.MinCost(gg, 1, gg.Width)
	require.NoError(t, err)
	got, err = dijkstra.MinCost(gg, 1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.LessOrEqual(t, got, int64(102))
}

func TestShortestPath_SingleRow(t *testing.T) {
	got, err := dijkstra.MinCost(mustGrid(t, "9123\n"), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got, "start cell is not counted")
}

func TestShortestPath_ZeroCosts(t *testing.T) {
	got, err := dijkstra.MinCost(mustGrid(t, "000\n000\n000\n"), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

// ------------------------------------------------------------------------
// 4. Path reconstruction
// ------------------------------------------------------------------------

// TestShortestPath_ReturnPath checks that the returned walk is admissible
// and that its entry costs add up to the reported cost.
func TestShortestPath_ReturnPath(t *testing.T) {
	gg := mustGrid(t, referenceGrid)
	for _, b := range [][2]int{{1, 3}, {4, 10}} {
		res, err := dijkstra.ShortestPath(gg, dijkstra.WithRunBounds(b[0], b[1]), dijkstra.WithReturnPath())
		require.NoError(t, err)
		require.NotEmpty(t, res.Path)
		require.Equal(t, res.Goal, res.Path[len(res.Path)-1])

		var sum int64
		prev := dijkstra.State{}
		for i, s := range res.Path {
			sum += int64(gg.Cost(s.X, s.Y))
			dx, dy := s.Dir.Offset()
			require.Equal(t, prev.X+dx, s.X, "step %d: %v", i, s)
			require.Equal(t, prev.Y+dy, s.Y, "step %d: %v", i, s)
			switch {
			case i == 0:
				require.Equal(t, 1, s.Run)
			case s.Dir == prev.Dir:
				require.Equal(t, prev.Run+1, s.Run)
				require.LessOrEqual(t, s.Run, b[1])
			default:
				require.Equal(t, 1, s.Run)
				require.GreaterOrEqual(t, prev.Run, b[0], "turned before MinRun")
			}
			prev = s
		}
		assert.Equal(t, res.Cost, sum)
		assert.GreaterOrEqual(t, res.Goal.Run, b[0])
	}
}
