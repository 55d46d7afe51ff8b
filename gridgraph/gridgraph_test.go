package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpuzzle/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and ParseDigits Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged or out-of-range inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"Negative", [][]int{{1, -2}}, gridgraph.DefaultGridOptions(), gridgraph.ErrCostRange},
		{"AboveMax", [][]int{{1, 12}}, gridgraph.DefaultGridOptions(), gridgraph.ErrCostRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak into the grid.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	opts := gridgraph.DefaultGridOptions()
	opts.MaxCost = 100
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	grid[0][0] = 99
	if got := gg.Cost(0, 0); got != 1 {
		t.Errorf("Cost(0,0) = %d after input mutation; want 1", got)
	}
}

// TestParseDigits reads a digit block and checks dimensions and costs.
func TestParseDigits(t *testing.T) {
	gg, err := gridgraph.ParseDigits(strings.NewReader("241\n321\n\n"))
	if err != nil {
		t.Fatalf("ParseDigits error: %v", err)
	}
	if gg.Width != 3 || gg.Height != 2 {
		t.Fatalf("size = %dx%d; want 3x2", gg.Width, gg.Height)
	}
	if gg.Cost(1, 0) != 4 || gg.Cost(0, 1) != 3 || gg.Cost(2, 1) != 1 {
		t.Errorf("unexpected costs: %v", gg.CellValues)
	}
}

// TestParseDigits_Errors rejects non-digits and ragged rows.
func TestParseDigits_Errors(t *testing.T) {
	if _, err := gridgraph.ParseDigits(strings.NewReader("12\n1x\n")); !errors.Is(err, gridgraph.ErrBadDigit) {
		t.Errorf("error = %v; want ErrBadDigit", err)
	}
	if _, err := gridgraph.ParseDigits(strings.NewReader("12\n1\n")); !errors.Is(err, gridgraph.ErrNonRectangular) {
		t.Errorf("error = %v; want ErrNonRectangular", err)
	}
	if _, err := gridgraph.ParseDigits(strings.NewReader("\n")); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("error = %v; want ErrEmptyGrid", err)
	}
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestIndexCoordinate round-trips every cell of a 4×3 grid.
func TestIndexCoordinate(t *testing.T) {
	grid := make([][]int, 3)
	for y := range grid {
		grid[y] = make([]int, 4)
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if gg.Size() != 12 {
		t.Fatalf("Size() = %d; want 12", gg.Size())
	}
	for idx := 0; idx < gg.Size(); idx++ {
		x, y := gg.Coordinate(idx)
		if got := gg.Index(x, y); got != idx {
			t.Errorf("Index(Coordinate(%d)) = %d", idx, got)
		}
	}
}

// TestDirection covers offsets, turns and names.
func TestDirection(t *testing.T) {
	cases := []struct {
		d           gridgraph.Direction
		dx, dy      int
		left, right gridgraph.Direction
		name        string
	}{
		{gridgraph.East, 1, 0, gridgraph.North, gridgraph.South, "E"},
		{gridgraph.South, 0, 1, gridgraph.East, gridgraph.West, "S"},
		{gridgraph.West, -1, 0, gridgraph.South, gridgraph.North, "W"},
		{gridgraph.North, 0, -1, gridgraph.West, gridgraph.East, "N"},
	}
	for _, tc := range cases {
		dx, dy := tc.d.Offset()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Offset() = (%d,%d); want (%d,%d)", tc.name, dx, dy, tc.dx, tc.dy)
		}
		if tc.d.Left() != tc.left || tc.d.Right() != tc.right {
			t.Errorf("%s turns = (%s,%s); want (%s,%s)", tc.name, tc.d.Left(), tc.d.Right(), tc.left, tc.right)
		}
		if tc.d.String() != tc.name {
			t.Errorf("String() = %q; want %q", tc.d.String(), tc.name)
		}
	}
}

// TestStep checks in-bounds and out-of-bounds moves from a corner.
func TestStep(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 2}, {3, 4}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if x, y, ok := gg.Step(0, 0, gridgraph.East); !ok || x != 1 || y != 0 {
		t.Errorf("Step East = (%d,%d,%v); want (1,0,true)", x, y, ok)
	}
	if x, y, ok := gg.Step(0, 0, gridgraph.South); !ok || x != 0 || y != 1 {
		t.Errorf("Step South = (%d,%d,%v); want (0,1,true)", x, y, ok)
	}
	if _, _, ok := gg.Step(0, 0, gridgraph.West); ok {
		t.Error("Step West from (0,0) should leave the grid")
	}
	if _, _, ok := gg.Step(0, 0, gridgraph.North); ok {
		t.Error("Step North from (0,0) should leave the grid")
	}
}
